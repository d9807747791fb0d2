package report

import (
	"io"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"github.com/specvital/frontend-rules/pkg/linter"
)

// JSON writes results in the ESLint JSON format, one array per run.
// Columns and fix ranges are counted in UTF-16 code units, as ESLint does.
type JSON struct {
	BaseDir string
}

type jsonFile struct {
	FilePath            string        `json:"filePath"`
	Messages            []jsonMessage `json:"messages"`
	ErrorCount          int           `json:"errorCount"`
	WarningCount        int           `json:"warningCount"`
	FixableErrorCount   int           `json:"fixableErrorCount"`
	FixableWarningCount int           `json:"fixableWarningCount"`
	Source              string        `json:"source,omitempty"`
}

type jsonMessage struct {
	RuleID    string   `json:"ruleId"`
	Severity  int      `json:"severity"`
	Message   string   `json:"message"`
	MessageID string   `json:"messageId"`
	Line      int      `json:"line"`
	Column    int      `json:"column"`
	EndLine   int      `json:"endLine"`
	EndColumn int      `json:"endColumn"`
	Fix       *jsonFix `json:"fix,omitempty"`
}

type jsonFix struct {
	Range [2]int `json:"range"`
	Text  string `json:"text"`
}

func (j *JSON) Format(w io.Writer, results []*linter.Result) error {
	files := make([]jsonFile, 0, len(results))
	for _, res := range results {
		if res == nil {
			continue
		}
		files = append(files, j.file(res))
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w).Encode(files)
}

func (j *JSON) file(res *linter.Result) jsonFile {
	out := jsonFile{
		FilePath:            j.path(res.Filename),
		Messages:            make([]jsonMessage, 0, len(res.Diagnostics)),
		ErrorCount:          res.ErrorCount(),
		WarningCount:        res.WarningCount(),
		FixableErrorCount:   res.FixableErrorCount(),
		FixableWarningCount: res.FixableWarningCount(),
	}
	if len(res.Diagnostics) > 0 {
		out.Source = string(res.Source)
	}

	pos := newUTF16Positions(res.Source)
	for _, d := range res.Diagnostics {
		msg := jsonMessage{
			RuleID:    d.RuleID,
			Severity:  jsonSeverity(d.Severity),
			Message:   d.Message,
			MessageID: d.MessageID,
			Line:      d.Location.StartLine,
			Column:    pos.column(d.Location.StartLine, d.Location.StartCol) + 1,
			EndLine:   d.Location.EndLine,
			EndColumn: pos.column(d.Location.EndLine, d.Location.EndCol) + 1,
		}
		if d.Fix != nil {
			r := d.Fix.Range()
			msg.Fix = &jsonFix{
				Range: [2]int{pos.offset(r[0]), pos.offset(r[1])},
				Text:  d.Fix.Text,
			}
		}
		out.Messages = append(out.Messages, msg)
	}
	return out
}

func (j *JSON) path(name string) string {
	if j.BaseDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(j.BaseDir, filepath.FromSlash(name))
}
