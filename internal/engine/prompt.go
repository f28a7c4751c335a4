package engine

import "context"

// Prompter asks the operator for a new student's display name during
// enrollment. It may take unbounded real time; the engine drops further
// scans while it is outstanding. An empty name or an error resolves to the
// generated placeholder, never to a failed enrollment.
type Prompter interface {
	EnrollmentName(ctx context.Context, fingerprintID int) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(ctx context.Context, fingerprintID int) (string, error)

func (f PrompterFunc) EnrollmentName(ctx context.Context, fingerprintID int) (string, error) {
	return f(ctx, fingerprintID)
}
