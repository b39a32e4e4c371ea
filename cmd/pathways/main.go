package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/diyouva/H1-B-Analysis/internal/config"
	"github.com/diyouva/H1-B-Analysis/internal/exporter"
	"github.com/diyouva/H1-B-Analysis/internal/model"
	"github.com/diyouva/H1-B-Analysis/internal/pipeline"
	"github.com/diyouva/H1-B-Analysis/internal/server"
	"github.com/diyouva/H1-B-Analysis/internal/simulate"
	"github.com/diyouva/H1-B-Analysis/internal/util"
)

var (
	port           = flag.Int("port", 0, "服务端口 (config.toml 优先；仅当未显式配置 port 时生效)")
	devMode        = flag.Bool("dev", false, "开发模式")
	dataDir        = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
	serve          = flag.Bool("serve", false, "启动看板 API 服务")
	enableFetch    = flag.Bool("fetch", false, "参照名单缺失时允许联网抓取")
	alpha          = flag.Float64("alpha", 0, "费用涨幅 α (覆盖配置文件，0 表示使用配置值)")
	elasticityLow  = flag.Float64("elasticityLow", 0, "低灵活度弹性 ε_low (覆盖配置文件，0 表示使用配置值)")
	elasticityHigh = flag.Float64("elasticityHigh", 0, "高灵活度弹性 ε_high (覆盖配置文件，0 表示使用配置值)")
	splitFortune   = flag.Bool("splitFortune500", false, "模拟结果按 Fortune500 维度交叉分组")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Pathways - H-1B 签证担保数据分析工具")
	fmt.Println("==========================================")

	// 加载配置
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// 命令行参数覆盖配置
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	if *enableFetch {
		cfg.References.EnableFetch = true
	}
	if *alpha != 0 {
		cfg.Simulation.Alpha = *alpha
	}
	if *elasticityLow != 0 {
		cfg.Simulation.ElasticityLow = *elasticityLow
	}
	if *elasticityHigh != 0 {
		cfg.Simulation.ElasticityHigh = *elasticityHigh
	}

	// 确保数据目录存在
	resolvedDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("创建数据目录失败: %v", err)
	} else {
		fmt.Printf("数据目录: %s\n", resolvedDir)
	}

	// 数据准备：聚合年度文件 + 打分类标记
	p := pipeline.New(cfg)
	result, err := p.Prepare(context.Background())
	if err != nil {
		log.Fatalf("数据准备失败: %v", err)
	}

	cleanPath, err := p.WriteClean(result)
	if err != nil {
		log.Fatalf("写入清洗结果失败: %v", err)
	}
	fmt.Printf("清洗结果已写入: %s\n", cleanPath)

	// 费用冲击模拟
	summary := simulate.Run(result.Records, simulate.Options{
		Alpha:             cfg.Simulation.Alpha,
		ElasticityLow:     cfg.Simulation.ElasticityLow,
		ElasticityHigh:    cfg.Simulation.ElasticityHigh,
		SplitByFortune500: *splitFortune,
	})
	printSummary(summary)

	summaryPath := filepath.Join(cfg.Data.DataDir, "simulation_result.csv")
	if err := exporter.WriteSummaryCSV(summary, summaryPath); err != nil {
		log.Fatalf("写入模拟结果失败: %v", err)
	}
	fmt.Printf("模拟结果已写入: %s\n", summaryPath)

	if !*serve {
		return
	}

	// 启动看板 API 服务
	srv := server.NewServer(cfg, result)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("正在打开浏览器: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("无法自动打开浏览器，请手动访问: %s\n", url)
		}
	} else {
		fmt.Printf("开发模式: 请访问 %s\n", url)
	}

	fmt.Println("\n按 Ctrl+C 停止服务...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n正在关闭服务...")
}

// printSummary 以表格形式打印模拟汇总
func printSummary(summary []model.SummaryRow) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	hasFortune := len(summary) > 0 && summary[0].Fortune500 != nil
	if hasFortune {
		t.AppendHeader(table.Row{"Year", "Group", "Fortune500", "Applications", "Simulated", "Change %"})
	} else {
		t.AppendHeader(table.Row{"Year", "Group", "Applications", "Simulated", "Change %"})
	}

	for _, row := range summary {
		change := fmt.Sprintf("%+.2f%%", row.ChangePercent)
		if hasFortune {
			t.AppendRow(table.Row{
				row.Year, row.FlexGroup, *row.Fortune500,
				row.TotalApplications, row.SimulatedTotalApplications, change,
			})
		} else {
			t.AppendRow(table.Row{
				row.Year, row.FlexGroup,
				row.TotalApplications, row.SimulatedTotalApplications, change,
			})
		}
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
