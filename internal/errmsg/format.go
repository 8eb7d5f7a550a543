// Package errmsg formats failures for the status line and the log.
package errmsg

import "fmt"

// Op names something the user asked for that can fail.
type Op string

const (
	OpCatalogLoad   Op = "load catalog"
	OpAlbumLoad     Op = "load album"
	OpLikedLoad     Op = "load liked songs"
	OpPlaybackStart Op = "start playback"

	OpMPRISStart  Op = "start media controls"
	OpNotifySend  Op = "send notification"
	OpConfigLoad  Op = "load configuration"
	OpLogFileOpen Op = "open log file"
)

// Format renders err as a status line. A nil err renders as "".
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith is Format with the subject of op quoted, e.g. an album title.
func FormatWith(op Op, subject string, err error) string {
	switch {
	case err == nil:
		return ""
	case subject == "":
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}

// Wrap prefixes err with op for returning up the stack. It keeps the
// chain intact for errors.Is and returns nil for a nil err.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
