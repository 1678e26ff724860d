package report

import (
	"errors"
	"io"
	"io/fs"

	"github.com/kreativreason/mason/internal/approval"
	"github.com/kreativreason/mason/internal/artifact"
	"github.com/kreativreason/mason/internal/plan/errz"
	"github.com/kreativreason/mason/internal/plan/loader"
)

// Stable error codes. Every failure of a run maps onto exactly one.
const (
	CodeApprovalRequired = "APPROVAL_REQUIRED"
	CodeFileNotFound     = "FILE_NOT_FOUND"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeScaffoldFailed   = "SCAFFOLD_FAILED"
)

// remediation is the fixed hint attached to every error envelope.
const remediation = "Check template paths, approvals, and input artifacts"

// Error is the failure envelope. It is the only output of a failed run;
// no partial result accompanies it.
type Error struct {
	Err ErrorBody `json:"error"`
}

// ErrorBody carries the structured failure description.
type ErrorBody struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Details     []string `json:"details"`
	Artifact    string   `json:"artifact"`
	Remediation string   `json:"remediation"`
}

// NewError builds a failure envelope with the given code and detail list.
func NewError(code, message string, details []string) *Error {
	if details == nil {
		details = []string{}
	}
	return &Error{
		Err: ErrorBody{
			Code:        code,
			Message:     message,
			Details:     details,
			Artifact:    "scaffold",
			Remediation: remediation,
		},
	}
}

// FromError classifies a run failure into its error envelope.
func FromError(err error) *Error {
	switch {
	case errors.Is(err, approval.ErrApprovalRequired):
		return NewError(CodeApprovalRequired, err.Error(),
			[]string{"Provide each required approver with --approved-by"})

	case errors.Is(err, fs.ErrNotExist), errors.Is(err, loader.ErrDocumentNotFound):
		return NewError(CodeFileNotFound, err.Error(),
			[]string{"Verify input paths exist"})

	case errors.Is(err, artifact.ErrProjectNameMismatch),
		errors.Is(err, errz.ErrFailedToValidatePlan),
		errors.Is(err, errz.ErrFailedToLoadPlan),
		errors.Is(err, loader.ErrParseJSON),
		errors.Is(err, loader.ErrParseTOML),
		errors.Is(err, loader.ErrUnsupportedExtension):
		return NewError(CodeValidationFailed, err.Error(),
			[]string{"Fix the reported plan or artifact fields and re-run"})

	default:
		return NewError(CodeScaffoldFailed, "Unexpected error: "+err.Error(), nil)
	}
}

// Emit writes the envelope to w as indented JSON.
func (e *Error) Emit(w io.Writer) error {
	return emitJSON(w, e)
}
