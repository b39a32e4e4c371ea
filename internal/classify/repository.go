package classify

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/diyouva/H1-B-Analysis/internal/dataset"
)

// ListFetcher 参照名单抓取协作方
//
// 本地缓存缺失时由仓库调用；实现见 internal/fetch。
type ListFetcher interface {
	Fetch(ctx context.Context) (*dataset.Table, error)
}

// RepositoryOptions 参照名单仓库配置
type RepositoryOptions struct {
	FortunePath string // 必需：大企业名单
	OPTPath     string // 可选：OPT 友好名单（兼做抓取缓存路径）
	CPTPath     string // 可选：CPT 友好名单（兼做抓取缓存路径）

	OPTFetcher ListFetcher // 可选：OPT 名单抓取器
	CPTFetcher ListFetcher // 可选：CPT 名单抓取器
}

// Repository 参照名单仓库
//
// 取数优先级是显式规则而非隐式文件探测：本地文件 → 注入的抓取器（成功后
// 回写缓存）→ 空集合（告警降级）。大企业名单没有降级路径。
type Repository struct {
	opts RepositoryOptions
}

// NewRepository 创建参照名单仓库
func NewRepository(opts RepositoryOptions) *Repository {
	return &Repository{opts: opts}
}

// Load 加载三份名单并构建分类器
func (r *Repository) Load(ctx context.Context) (*Classifier, error) {
	fortune, err := r.loadFortune()
	if err != nil {
		return nil, err
	}

	opt, err := r.loadOptional(ctx, "OPT", r.opts.OPTPath, r.opts.OPTFetcher)
	if err != nil {
		return nil, err
	}

	cpt, err := r.loadOptional(ctx, "CPT", r.opts.CPTPath, r.opts.CPTFetcher)
	if err != nil {
		return nil, err
	}
	cpt = FilterCPTFriendly(cpt)

	return NewClassifier(BuildMemberSet(fortune), BuildMemberSet(opt), BuildMemberSet(cpt)), nil
}

// loadFortune 加载必需的大企业名单
func (r *Repository) loadFortune() (*dataset.Table, error) {
	if _, err := os.Stat(r.opts.FortunePath); err != nil {
		return nil, &MissingReferenceFileError{Name: "Fortune 500", Path: r.opts.FortunePath}
	}
	tbl, err := dataset.ReadFile(r.opts.FortunePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load Fortune 500 list: %w", err)
	}
	return tbl, nil
}

// loadOptional 加载可选名单：本地文件 → 抓取器 → 空
func (r *Repository) loadOptional(ctx context.Context, name, path string, fetcher ListFetcher) (*dataset.Table, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			tbl, err := dataset.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to load %s list: %w", name, err)
			}
			return tbl, nil
		}
	}

	if fetcher != nil {
		log.Printf("%s 名单本地缓存缺失，尝试在线抓取", name)
		tbl, err := fetcher.Fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s list: %w", name, err)
		}
		if path != "" {
			if err := tbl.WriteCSV(path); err != nil {
				log.Printf("警告: %s 名单缓存写入失败: %v", name, err)
			}
		}
		return tbl, nil
	}

	log.Printf("警告: %s 名单缺失且无抓取器，按空集合处理", name)
	return nil, nil
}
