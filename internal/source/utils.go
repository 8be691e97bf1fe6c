package source

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// normalizeNewlines заменяет \r\n на \n и выбрасывает одиночные \r.
// Старые SRT-файлы встречаются и с CRLF, и с голыми CR (классический Mac).
// Возвращает новый слайс и флаг: были ли замены.
func normalizeNewlines(content []byte) ([]byte, bool) {
	// Быстрый путь: если нет \r, возвращаем как есть.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' {
			if i+1 < len(content) && content[i+1] == '\n' {
				continue // \n будет добавлен на следующей итерации
			}
			continue
		}
		out = append(out, content[i])
	}
	return out, true
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// buildWidthIndex возвращает display-width смещение начала каждой строки
// и полную ширину содержимого (каждый \n считается за 1 колонку).
func buildWidthIndex(content []byte) (idx []uint32, total uint32) {
	lines := strings.Split(string(content), "\n")
	idx = make([]uint32, len(lines))
	off := uint32(0)
	for i, line := range lines {
		idx[i] = off
		off += uint32(runewidth.StringWidth(line)) + 1
	}
	// последняя строка не завершается \n
	total = off - 1
	return idx, total
}

// toLineCol находит строку и display-колонку для width-смещения off.
func toLineCol(widthIdx []uint32, off uint32) LineCol {
	if len(widthIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// бинпоиск: наибольший widthIdx[i] <= off
	lo, hi := 0, len(widthIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if widthIdx[mid] <= off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := hi
	if line < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	return LineCol{Line: uint32(line + 1), Col: off - widthIdx[line] + 1}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

// BaseName returns the final path element.
func BaseName(p string) string {
	return filepath.Base(p)
}

// RelativePath returns p relative to base, when possible.
func RelativePath(p, base string) (string, error) {
	return filepath.Rel(base, p)
}

// AbsolutePath resolves p into an absolute path.
func AbsolutePath(p string) (string, error) {
	return filepath.Abs(p)
}
