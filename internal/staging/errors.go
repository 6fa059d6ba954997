package staging

import "fmt"

// ValidationError indicates repository or filesystem state the user must
// fix before retrying. Nothing is auto-recovered.
type ValidationError struct {
	Path   string // repository or directory the check applies to, may be empty
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// AlreadyExistsError indicates a staging directory collision without --force.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("staging directory %s already exists (use --force to replace it)", e.Path)
}

// BranchMismatchError indicates the work repository is checked out on a
// branch other than the sync target.
type BranchMismatchError struct {
	Current string
	Target  string
}

func (e *BranchMismatchError) Error() string {
	return fmt.Sprintf("work repository is on branch '%s': use --auto-checkout to switch automatically or check out '%s' manually", e.Current, e.Target)
}

// NonFastForwardError indicates the work branch has diverged from the
// staged commit and --force was not given.
type NonFastForwardError struct {
	Branch string
	Err    error
}

func (e *NonFastForwardError) Error() string {
	return fmt.Sprintf("unable to fast-forward work branch '%s' to the staged commit (use --force to hard-reset): %v", e.Branch, e.Err)
}

func (e *NonFastForwardError) Unwrap() error { return e.Err }
