package domain

import (
	"github.com/lgupililla/gad_planning_app/internal/apperrors"
)

// The workflow is a closed state machine:
//
//	Draft --------(office submit)-------> Submitted
//	For Revision/Returned --(resubmit)--> Submitted
//	Submitted ----(reviewer approve)----> Approved
//	Submitted ----(reviewer return)-----> For Revision
//	non-Draft ---(executive approve)----> Approved
//	non-Draft ---(executive return)-----> For Revision
//
// Owner saves that keep a proposal in Draft are not transitions and are gated
// separately by ProposalStatus.OwnerEditable.

// ValidateOwnerTransition checks an owning office's edit-and-save or
// edit-and-submit against the current status. isOwner must already reflect an
// ownership check against the proposal row.
func ValidateOwnerTransition(current, next ProposalStatus, actor Actor, isOwner bool) error {
	if !isOwner {
		return apperrors.Wrapf(apperrors.ErrForbidden, "only the owning office may edit a proposal")
	}
	if actor.Role.IsReviewer() || actor.Role.IsExecutive() {
		// Reviewers and executives act through the review operations, never
		// through the owner save path.
		return apperrors.Wrapf(apperrors.ErrForbidden, "role %s may not act as the submitting office", actor.Role)
	}
	if !current.OwnerEditable() {
		return apperrors.Wrapf(apperrors.ErrValidation, "proposal in status %q is no longer editable by the office", current)
	}
	switch next {
	case StatusDraft:
		// Save without submitting: only valid while still in Draft. A returned
		// proposal goes straight back to Submitted on the next save.
		if current != StatusDraft {
			return apperrors.Wrapf(apperrors.ErrValidation, "cannot move a %q proposal back to Draft", current)
		}
	case StatusSubmitted:
		// Draft or For Revision/Returned -> Submitted.
	default:
		return apperrors.Wrapf(apperrors.ErrValidation, "office cannot set status %q", next)
	}
	return nil
}

// ValidateReviewTransition checks a reviewer's or executive's decision against
// the current status. Reviewers decide only on Submitted proposals; the
// executive may approve-and-mainstream or return anything already out of Draft.
func ValidateReviewTransition(current, next ProposalStatus, actor Actor) error {
	if next != StatusApproved && next != StatusForRevision {
		return apperrors.Wrapf(apperrors.ErrValidation, "review decision must end in %q or %q, not %q",
			StatusApproved, StatusForRevision, next)
	}
	switch {
	case actor.Role.IsReviewer():
		if current != StatusSubmitted {
			return apperrors.Wrapf(apperrors.ErrValidation, "reviewer may only decide on %q proposals, not %q",
				StatusSubmitted, current)
		}
	case actor.Role.IsExecutive():
		if current == StatusDraft {
			return apperrors.Wrapf(apperrors.ErrValidation, "a draft has not been submitted and cannot be reviewed")
		}
	default:
		return apperrors.Wrapf(apperrors.ErrForbidden, "role %s may not approve or return proposals", actor.Role)
	}
	return nil
}
