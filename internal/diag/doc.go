// Package diag collects lexer reports as positioned diagnostics.
//
// Назначение: превращать сообщения Reporter лексера (незакрытая строка,
// regex, комментарий до конца файла) в диагностики с путём, строкой и
// колонкой; копить их в Bag с лимитом; печатать.
//
// Не делает: не влияет на подсветку. Диапазоны и состояния блоков
// остаются такими же, с диагностиками или без.
package diag
