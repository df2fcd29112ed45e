// Package fuzztests houses Go fuzz harnesses that exercise the front half
// of the checker pipeline (source -> lexer -> parser -> typing). Its goal
// is to smoke test robustness and guard against panics or allocator
// explosions on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet
// и прогоняют их через лексер/парсер/типизацию.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser,
// internal/sema, internal/diag, internal/ast.

package fuzztests
