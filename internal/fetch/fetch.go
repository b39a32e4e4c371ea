package fetch

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/diyouva/H1-B-Analysis/internal/dataset"
)

// 两份雇主名单的默认来源页面
const (
	DefaultOPTURL = "https://www.unitedopt.com/Home/blogdetail/top-fortune-500-companies-offering-opt-jobs-to-international-students-in-2024"
	DefaultCPTURL = "https://day1cptuniversities.com/day-1-cpt/cpt-employers"
)

func newClient() *resty.Client {
	client := resty.New()
	client.SetHeader("user-agent", "Mozilla/5.0 (compatible; h1b-analysis/1.0)")
	client.SetTimeout(time.Second * 30)
	return client
}

// fetchDocument 抓取页面并解析为 goquery 文档
func fetchDocument(ctx context.Context, client *resty.Client, url string) (*goquery.Document, error) {
	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status %s from %s", resp.Status(), url)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return doc, nil
}

// tableFromSelection 将 HTML 表格转为平面表
//
// 表头取首行（th 或 td），单元格文本去首尾空白、换行折叠为空格，
// 与本地缓存 csv 的清洗口径一致。
func tableFromSelection(sel *goquery.Selection) *dataset.Table {
	tbl := &dataset.Table{}

	sel.Find("tr").Each(func(i int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, cleanCellText(cell.Text()))
		})
		if len(cells) == 0 {
			return
		}
		if tbl.Columns == nil {
			tbl.Columns = cells
			return
		}
		tbl.Rows = append(tbl.Rows, cells)
	})

	return tbl
}

func cleanCellText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}

// OPTFetcher OPT 友好雇主名单抓取器（unitedopt 博客页的表格）
type OPTFetcher struct {
	http *resty.Client
	url  string
}

// NewOPTFetcher 创建 OPT 名单抓取器，url 为空时用默认来源
func NewOPTFetcher(url string) *OPTFetcher {
	if url == "" {
		url = DefaultOPTURL
	}
	return &OPTFetcher{http: newClient(), url: url}
}

// Fetch 抓取并解析 OPT 雇主表
func (f *OPTFetcher) Fetch(ctx context.Context) (*dataset.Table, error) {
	doc, err := fetchDocument(ctx, f.http, f.url)
	if err != nil {
		return nil, err
	}

	sel := doc.Find("table.mrd-blog-table").First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("opt employer table not found at %s", f.url)
	}
	return tableFromSelection(sel), nil
}

// CPTFetcher CPT 友好雇主名单抓取器（day1cpt 汇总表）
type CPTFetcher struct {
	http *resty.Client
	url  string
}

// NewCPTFetcher 创建 CPT 名单抓取器，url 为空时用默认来源
func NewCPTFetcher(url string) *CPTFetcher {
	if url == "" {
		url = DefaultCPTURL
	}
	return &CPTFetcher{http: newClient(), url: url}
}

// Fetch 抓取并解析 CPT 雇主表
//
// 目标表格带固定 id；找不到通常说明页面改为 JS 渲染，按错误返回。
func (f *CPTFetcher) Fetch(ctx context.Context) (*dataset.Table, error) {
	doc, err := fetchDocument(ctx, f.http, f.url)
	if err != nil {
		return nil, err
	}

	sel := doc.Find("table#cei-summary-table").First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("cpt summary table not found at %s (page may be rendered client-side)", f.url)
	}
	return tableFromSelection(sel), nil
}
