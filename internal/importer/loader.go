package importer

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"

	"github.com/diyouva/H1-B-Analysis/internal/dataset"
	"github.com/diyouva/H1-B-Analysis/internal/model"
	"github.com/diyouva/H1-B-Analysis/internal/parser"
)

// ErrNoInputFiles 目录下没有任何匹配的年度文件
var ErrNoInputFiles = errors.New("no yearly input files found")

// Options 加载选项
type Options struct {
	DataDir    string // 年度文件目录
	FilePrefix string // 文件名前缀，如 "h1b_datahubexport"
}

// FileReport 单个文件的加载情况
type FileReport struct {
	Filename      string   `json:"filename"`
	Year          int      `json:"year"`
	Rows          int      `json:"rows"`
	MissingFields []string `json:"missingFields"`
}

// Report 整体加载报告
type Report struct {
	Files   []FileReport    `json:"files"`
	Records []*model.Record `json:"records"` // 按 文件序 + 文件内行序
}

// Loader 年度文件加载器
//
// 发现 <prefix>-<year>.<csv|xlsx> 文件，逐个走 parser 解析，打上年份标记，
// 拼接为单一统一表。同样的输入文件集重复加载产出逐位一致的结果。
type Loader struct {
	opts Options
}

// NewLoader 创建加载器
func NewLoader(opts Options) *Loader {
	return &Loader{opts: opts}
}

// LoadAll 加载全部年度文件
//
// 一个文件都没匹配到返回 ErrNoInputFiles；雇主列缺失或文件名年份不合法
// 直接失败，不做跳过单个文件的降级。数值列缺失仅告警。
func (l *Loader) LoadAll() (*Report, error) {
	files, err := l.discover()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s/%s-*.csv|xlsx", ErrNoInputFiles, l.opts.DataDir, l.opts.FilePrefix)
	}

	report := &Report{}
	for _, path := range files {
		year, err := parser.YearFromFilename(path)
		if err != nil {
			return nil, err
		}

		tbl, err := dataset.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
		}

		result, err := parser.ParseYearlyTable(tbl, filepath.Base(path), year)
		if err != nil {
			return nil, err
		}

		for _, field := range result.MissingFields {
			log.Printf("警告: %s 未找到 %s 对应列，按零填充", result.Source, field)
		}

		report.Files = append(report.Files, FileReport{
			Filename:      result.Source,
			Year:          year,
			Rows:          len(result.Records),
			MissingFields: result.MissingFields,
		})
		report.Records = append(report.Records, result.Records...)
	}

	return report, nil
}

// discover 枚举匹配的年度文件，按文件名排序保证拼接顺序稳定
func (l *Loader) discover() ([]string, error) {
	var files []string
	for _, ext := range []string{"csv", "xlsx"} {
		pattern := filepath.Join(l.opts.DataDir, fmt.Sprintf("%s-*.%s", l.opts.FilePrefix, ext))
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob pattern: %w", err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}
