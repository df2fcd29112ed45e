package ast

type (
	// главные сущности
	FnID       uint32
	StmtID     uint32
	ExprID     uint32
	TypeExprID uint32
	// подсущности
	PayloadID uint32
)

const (
	NoFnID       FnID       = 0
	NoStmtID     StmtID     = 0
	NoExprID     ExprID     = 0
	NoTypeExprID TypeExprID = 0
	NoPayloadID  PayloadID  = 0
)

func (id FnID) IsValid() bool       { return id != NoFnID }
func (id StmtID) IsValid() bool     { return id != NoStmtID }
func (id ExprID) IsValid() bool     { return id != NoExprID }
func (id TypeExprID) IsValid() bool { return id != NoTypeExprID }
func (id PayloadID) IsValid() bool  { return id != NoPayloadID }
