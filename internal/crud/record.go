package crud

import (
	"go-tursina-admin/internal/model"
)

// auditable is satisfied by models embedding model.BaseModel. The
// handler stays generic over plain structs and picks up audit support
// through a runtime check rather than a type constraint.
type auditable interface {
	RecordID() uint
	Touch(actor string, created bool)
}

// identified is also satisfied through the embedded model.BaseModel.
type identified interface {
	Base() *model.BaseModel
}

// captureIdentity snapshots the identity and audit columns before a
// body bind, so a JSON payload carrying its own id or created_* fields
// cannot re-target the addressed row.
func captureIdentity(rec any) *model.BaseModel {
	if r, ok := rec.(identified); ok {
		snapshot := *r.Base()
		return &snapshot
	}
	return nil
}

func restoreIdentity(rec any, saved *model.BaseModel) {
	if saved == nil {
		return
	}
	if r, ok := rec.(identified); ok {
		base := r.Base()
		base.ID = saved.ID
		base.CreatedAt = saved.CreatedAt
		base.CreatedBy = saved.CreatedBy
	}
}

func setAudit(rec any, actor string, created bool) {
	if r, ok := rec.(auditable); ok {
		r.Touch(actor, created)
	}
}

func recordID(rec any) uint {
	if r, ok := rec.(auditable); ok {
		return r.RecordID()
	}
	return 0
}
