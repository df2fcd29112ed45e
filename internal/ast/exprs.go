package ast

import (
	"narrowcheck/internal/source"
)

type ExprIdentData struct {
	Name source.StringID
}

type ExprLiteralData struct {
	Kind  ExprLitKind
	Value source.StringID
}

type ExprUnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

type ExprAssignData struct {
	Left  ExprID
	Right ExprID
}

type ExprTernaryData struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}

type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprConvertData struct {
	Kind    ConvertKind
	To      TypeExprID // set for explicit casts, NoTypeExprID otherwise
	Operand ExprID
}

type ExprInitData struct {
	Value ExprID
}

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena     *Arena[Expr]
	Idents    *Arena[ExprIdentData]
	Literals  *Arena[ExprLiteralData]
	Unaries   *Arena[ExprUnaryData]
	Binaries  *Arena[ExprBinaryData]
	Assigns   *Arena[ExprAssignData]
	Ternaries *Arena[ExprTernaryData]
	Calls     *Arena[ExprCallData]
	Converts  *Arena[ExprConvertData]
	Inits     *Arena[ExprInitData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using
// capHint as the initial capacity.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:     NewArena[Expr](capHint),
		Idents:    NewArena[ExprIdentData](capHint),
		Literals:  NewArena[ExprLiteralData](capHint),
		Unaries:   NewArena[ExprUnaryData](capHint),
		Binaries:  NewArena[ExprBinaryData](capHint),
		Assigns:   NewArena[ExprAssignData](capHint),
		Ternaries: NewArena[ExprTernaryData](capHint),
		Calls:     NewArena[ExprCallData](capHint),
		Converts:  NewArena[ExprConvertData](capHint),
		Inits:     NewArena[ExprInitData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewLiteral creates a new literal expression.
func (e *Exprs) NewLiteral(span source.Span, kind ExprLitKind, value source.StringID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Kind: kind, Value: value})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal data for the given expression ID.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewUnary creates a new unary expression.
func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the unary data for the given expression ID.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewAssign creates a new assignment expression.
func (e *Exprs) NewAssign(span source.Span, left, right ExprID) ExprID {
	payload := e.Assigns.Allocate(ExprAssignData{Left: left, Right: right})
	return e.new(ExprAssign, span, PayloadID(payload))
}

// Assign returns the assignment data for the given expression ID.
func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.Get(uint32(expr.Payload)), true
}

// NewTernary creates a new conditional expression.
func (e *Exprs) NewTernary(span source.Span, cond, then, els ExprID) ExprID {
	payload := e.Ternaries.Allocate(ExprTernaryData{Cond: cond, Then: then, Else: els})
	return e.new(ExprTernary, span, PayloadID(payload))
}

// Ternary returns the conditional data for the given expression ID.
func (e *Exprs) Ternary(id ExprID) (*ExprTernaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTernary {
		return nil, false
	}
	return e.Ternaries.Get(uint32(expr.Payload)), true
}

// NewCall creates a new call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: args})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewConvert creates a new conversion wrapper around operand.
func (e *Exprs) NewConvert(span source.Span, kind ConvertKind, to TypeExprID, operand ExprID) ExprID {
	payload := e.Converts.Allocate(ExprConvertData{Kind: kind, To: to, Operand: operand})
	return e.new(ExprConvert, span, PayloadID(payload))
}

// Convert returns the conversion data for the given expression ID.
func (e *Exprs) Convert(id ExprID) (*ExprConvertData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprConvert {
		return nil, false
	}
	return e.Converts.Get(uint32(expr.Payload)), true
}

// NewInit creates an initializer-binding wrapper around value.
func (e *Exprs) NewInit(span source.Span, value ExprID) ExprID {
	payload := e.Inits.Allocate(ExprInitData{Value: value})
	return e.new(ExprInit, span, PayloadID(payload))
}

// Init returns the initializer data for the given expression ID.
func (e *Exprs) Init(id ExprID) (*ExprInitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprInit {
		return nil, false
	}
	return e.Inits.Get(uint32(expr.Payload)), true
}
