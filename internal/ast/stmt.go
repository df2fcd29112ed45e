package ast

import (
	"narrowcheck/internal/source"
)

type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtDecl
	StmtExpr
	StmtReturn
	StmtIf
	StmtWhile
	StmtDoWhile
	StmtFor
	StmtSwitch
	StmtCase
	StmtBreak
	StmtContinue
	StmtEmpty
)

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}
