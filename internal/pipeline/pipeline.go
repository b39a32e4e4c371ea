package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/diyouva/H1-B-Analysis/internal/classify"
	"github.com/diyouva/H1-B-Analysis/internal/config"
	"github.com/diyouva/H1-B-Analysis/internal/exporter"
	"github.com/diyouva/H1-B-Analysis/internal/fetch"
	"github.com/diyouva/H1-B-Analysis/internal/importer"
	"github.com/diyouva/H1-B-Analysis/internal/model"
	"github.com/diyouva/H1-B-Analysis/internal/simulate"
)

// Result 一次数据准备的产出
type Result struct {
	Records []*model.Record  `json:"records"` // 分类后的统一表
	Report  *importer.Report `json:"report"`  // 逐文件加载报告

	FortuneCount int `json:"fortuneCount"`
	OPTCount     int `json:"optCount"`
	CPTCount     int `json:"cptCount"`
}

// Pipeline 数据准备与模拟的编排器
//
// 单线程批处理：加载年度文件 → 构建参照名单 → 打分类标记。
// 所有阶段都是纯函数式变换，相同输入重复运行结果一致。
type Pipeline struct {
	cfg *config.AppConfig
}

// New 创建编排器
func New(cfg *config.AppConfig) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Prepare 执行数据准备（聚合 + 分类）
func (p *Pipeline) Prepare(ctx context.Context) (*Result, error) {
	loader := importer.NewLoader(importer.Options{
		DataDir:    p.cfg.Data.DataDir,
		FilePrefix: p.cfg.Data.FilePrefix,
	})
	report, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate yearly files: %w", err)
	}
	log.Printf("已加载 %d 个年度文件，共 %d 条记录", len(report.Files), len(report.Records))

	classifier, err := p.buildClassifier(ctx)
	if err != nil {
		return nil, err
	}
	classifier.Apply(report.Records)

	fortune, opt, cpt := classifier.Sizes()
	log.Printf("参照名单规模: Fortune500=%d OPT=%d CPT=%d", fortune, opt, cpt)

	return &Result{
		Records:      report.Records,
		Report:       report,
		FortuneCount: fortune,
		OPTCount:     opt,
		CPTCount:     cpt,
	}, nil
}

// buildClassifier 按配置组装参照名单仓库
func (p *Pipeline) buildClassifier(ctx context.Context) (*classify.Classifier, error) {
	opts := classify.RepositoryOptions{
		FortunePath: config.ReferencePath(p.cfg, p.cfg.References.FortunePath),
		OPTPath:     config.ReferencePath(p.cfg, p.cfg.References.OPTPath),
		CPTPath:     config.ReferencePath(p.cfg, p.cfg.References.CPTPath),
	}
	if p.cfg.References.EnableFetch {
		opts.OPTFetcher = fetch.NewOPTFetcher(p.cfg.References.OPTURL)
		opts.CPTFetcher = fetch.NewCPTFetcher(p.cfg.References.CPTURL)
	}
	return classify.NewRepository(opts).Load(ctx)
}

// WriteClean 落盘清洗结果表，返回输出路径
func (p *Pipeline) WriteClean(result *Result) (string, error) {
	path := config.CleanOutputPath(p.cfg)
	if err := exporter.WriteCleanCSV(result.Records, path); err != nil {
		return "", fmt.Errorf("failed to write clean table: %w", err)
	}
	return path, nil
}

// DefaultSimulation 用配置里的默认参数跑一次模拟
func (p *Pipeline) DefaultSimulation(result *Result) []model.SummaryRow {
	return simulate.Run(result.Records, simulate.Options{
		Alpha:          p.cfg.Simulation.Alpha,
		ElasticityLow:  p.cfg.Simulation.ElasticityLow,
		ElasticityHigh: p.cfg.Simulation.ElasticityHigh,
	})
}
