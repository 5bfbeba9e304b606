package usecase

import (
	"context"

	"action-item-extractor/internal/extraction"
	"action-item-extractor/internal/model"
	"action-item-extractor/pkg/actionitem"
)

// Recover runs only the recovery pipeline and the schema enforcer. Blank or
// unrecoverable input yields empty items and an empty stage, never an error.
func (uc *implUseCase) Recover(ctx context.Context, sc model.Scope, input extraction.RecoverInput) (extraction.RecoverOutput, error) {
	res, ok := uc.recoverer.Recover(input.RawOutput)
	if !ok {
		uc.l.Infof(ctx, "extraction.Recover: user=%s nothing recovered from %d bytes", sc.UserID, len(input.RawOutput))
		return extraction.RecoverOutput{Items: []actionitem.ActionItem{}}, nil
	}

	items := actionitem.Enforce(res.Candidate)
	uc.l.Debugf(ctx, "extraction.Recover: user=%s stage=%s kind=%s items=%d", sc.UserID, res.Stage, res.Candidate.Kind, len(items))

	return extraction.RecoverOutput{
		Items: items,
		Stage: res.Stage.String(),
		Kind:  res.Candidate.Kind.String(),
	}, nil
}
