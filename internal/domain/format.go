package domain

// Fixed parts of the ZenTao bulk-import format.
const (
	// ApplyPhase is written to the 适用阶段 column of every row
	ApplyPhase = "功能测试阶段"
	// TitleSeparator splits a case title into a group title and a sub-case name when merging
	TitleSeparator = " > "
	// EmptyModule is used when a case has no suite
	EmptyModule = "/"
	// OutputExt replaces the source suffix to form the output path
	OutputExt = ".data"
	// SourceSuffixLen is how many trailing characters of the source path are replaced by OutputExt
	SourceSuffixLen = 6
	// RecordTerminator ends every record; line breaks inside fields stay "\n"
	RecordTerminator = "\r\n"
)

var header = [ColumnCount]string{
	"所属模块",
	"用例标题",
	"前置条件",
	"步骤",
	"预期",
	"关键词",
	"优先级",
	"用例类型",
	"适用阶段",
}

// Header returns a copy of the import file header row.
func Header() []string {
	h := header
	return h[:]
}
