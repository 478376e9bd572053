package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("Leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("Leave request already processed")
	// ErrNotCurrentApprover surfaces an approval attempt by anyone other than
	// the approver holding the pending step. The legacy portal swallowed this
	// silently; here it is an explicit authorization failure.
	ErrNotCurrentApprover = errors.New("Actor is not the current pending approver")
)
