// Package fuzztests houses Go fuzz harnesses for the highlighter: the block
// lexer on arbitrary input and the document on arbitrary edit scripts. The
// goal is to catch panics and broken range invariants.
//
// Назначение: прогонять байты через lexer и document и проверять инварианты
// диапазонов и состояний.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/document,
// internal/mark.

package fuzztests
