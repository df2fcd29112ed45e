package ast

import (
	"narrowcheck/internal/source"
)

type StmtBlockData struct {
	Stmts []StmtID
}

type StmtDeclData struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeExprID
	Init     ExprID // NoExprID when the declaration has no initializer
}

type StmtExprData struct {
	Expr ExprID
}

type StmtReturnData struct {
	Value ExprID // NoExprID for a bare return
}

type StmtIfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID // NoStmtID when absent
}

type StmtWhileData struct {
	Cond ExprID
	Body StmtID
}

type StmtDoWhileData struct {
	Body StmtID
	Cond ExprID
}

type StmtForData struct {
	Init StmtID // declaration or expression statement, NoStmtID when empty
	Cond ExprID
	Post ExprID
	Body StmtID
}

type StmtSwitchData struct {
	Cond  ExprID
	Cases []StmtID // StmtCase entries in source order
}

type StmtCaseData struct {
	Value ExprID // NoExprID for default
	Body  []StmtID
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena    *Arena[Stmt]
	Blocks   *Arena[StmtBlockData]
	Decls    *Arena[StmtDeclData]
	Exprs    *Arena[StmtExprData]
	Returns  *Arena[StmtReturnData]
	Ifs      *Arena[StmtIfData]
	Whiles   *Arena[StmtWhileData]
	DoWhiles *Arena[StmtDoWhileData]
	Fors     *Arena[StmtForData]
	Switches *Arena[StmtSwitchData]
	Cases    *Arena[StmtCaseData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:    NewArena[Stmt](capHint),
		Blocks:   NewArena[StmtBlockData](capHint),
		Decls:    NewArena[StmtDeclData](capHint),
		Exprs:    NewArena[StmtExprData](capHint),
		Returns:  NewArena[StmtReturnData](capHint),
		Ifs:      NewArena[StmtIfData](capHint),
		Whiles:   NewArena[StmtWhileData](capHint),
		DoWhiles: NewArena[StmtDoWhileData](capHint),
		Fors:     NewArena[StmtForData](capHint),
		Switches: NewArena[StmtSwitchData](capHint),
		Cases:    NewArena[StmtCaseData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{Stmts: stmts})
	return s.new(StmtBlock, span, PayloadID(payload))
}

func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewDecl(span source.Span, name source.StringID, nameSpan source.Span, typ TypeExprID, init ExprID) StmtID {
	payload := s.Decls.Allocate(StmtDeclData{Name: name, NameSpan: nameSpan, Type: typ, Init: init})
	return s.new(StmtDecl, span, PayloadID(payload))
}

func (s *Stmts) Decl(id StmtID) (*StmtDeclData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDecl {
		return nil, false
	}
	return s.Decls.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els StmtID) StmtID {
	payload := s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then, Else: els})
	return s.new(StmtIf, span, PayloadID(payload))
}

func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewDoWhile(span source.Span, body StmtID, cond ExprID) StmtID {
	payload := s.DoWhiles.Allocate(StmtDoWhileData{Body: body, Cond: cond})
	return s.new(StmtDoWhile, span, PayloadID(payload))
}

func (s *Stmts) DoWhile(id StmtID) (*StmtDoWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDoWhile {
		return nil, false
	}
	return s.DoWhiles.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewFor(span source.Span, init StmtID, cond, post ExprID, body StmtID) StmtID {
	payload := s.Fors.Allocate(StmtForData{Init: init, Cond: cond, Post: post, Body: body})
	return s.new(StmtFor, span, PayloadID(payload))
}

func (s *Stmts) For(id StmtID) (*StmtForData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFor {
		return nil, false
	}
	return s.Fors.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewSwitch(span source.Span, cond ExprID, cases []StmtID) StmtID {
	payload := s.Switches.Allocate(StmtSwitchData{Cond: cond, Cases: cases})
	return s.new(StmtSwitch, span, PayloadID(payload))
}

func (s *Stmts) Switch(id StmtID) (*StmtSwitchData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtSwitch {
		return nil, false
	}
	return s.Switches.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewCase(span source.Span, value ExprID, body []StmtID) StmtID {
	payload := s.Cases.Allocate(StmtCaseData{Value: value, Body: body})
	return s.new(StmtCase, span, PayloadID(payload))
}

func (s *Stmts) Case(id StmtID) (*StmtCaseData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtCase {
		return nil, false
	}
	return s.Cases.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.new(StmtBreak, span, NoPayloadID)
}

func (s *Stmts) NewContinue(span source.Span) StmtID {
	return s.new(StmtContinue, span, NoPayloadID)
}

func (s *Stmts) NewEmpty(span source.Span) StmtID {
	return s.new(StmtEmpty, span, NoPayloadID)
}
