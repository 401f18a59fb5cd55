package driven

import "context"

// ShareArtifact is the outcome of a share-by-path call: a link scoped
// to a destination path, plus the access code the service issued.
type ShareArtifact struct {
	// Link is the generated share URL.
	Link string

	// AccessCode is the extraction code for the link, if the backend
	// requires one.
	AccessCode string
}

// LinkGenerator obtains a provisional share link scoped to a serving
// path, before any content exists there.
type LinkGenerator interface {
	// ShareByPath asks the conversion service for a share link over
	// destPath. Failures wrap domain.ErrLinkGeneration.
	ShareByPath(ctx context.Context, destPath string) (*ShareArtifact, error)
}

// TransferService copies the content behind an original share link
// into a serving path. Calls are slow and are never awaited by the
// user-facing response path.
type TransferService interface {
	// Transfer materializes rawLink into destPath. Failures wrap
	// domain.ErrTransfer.
	Transfer(ctx context.Context, rawLink, destPath string) error
}
