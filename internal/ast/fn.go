package ast

import (
	"narrowcheck/internal/source"
)

type FnParam struct {
	Name source.StringID // NoStringID for an unnamed parameter
	Type TypeExprID
	Span source.Span
}

type FnData struct {
	Name     source.StringID
	NameSpan source.Span
	Params   []FnParam
	Return   TypeExprID
	Body     StmtID // NoStmtID for a prototype
	Span     source.Span
}

// Fns manages allocation of function declarations.
type Fns struct {
	Arena *Arena[FnData]
}

func NewFns(capHint uint) *Fns {
	return &Fns{
		Arena: NewArena[FnData](capHint),
	}
}

func (f *Fns) New(data FnData) FnID {
	return FnID(f.Arena.Allocate(data))
}

func (f *Fns) Get(id FnID) *FnData {
	return f.Arena.Get(uint32(id))
}

func (f *Fns) Len() uint32 {
	return f.Arena.Len()
}
