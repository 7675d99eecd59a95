package zentao

import "xmind2zentao/internal/domain"

// OutputPath derives the import file path from the source path by replacing
// its last SourceSuffixLen characters with OutputExt. The suffix is not
// inspected, so "cases.json" becomes "case.data".
func OutputPath(source string) string {
	r := []rune(source)
	if len(r) <= domain.SourceSuffixLen {
		return domain.OutputExt
	}
	return string(r[:len(r)-domain.SourceSuffixLen]) + domain.OutputExt
}
