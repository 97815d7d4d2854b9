package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string
	Capacity    string // "256", "4K", ... or "" for single-shape benchmarks
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// cascadeLevels maps the capacity label used in sub-benchmark names to the
// number of allocator levels under it. Used for the depth-scaling table.
var cascadeLevels = map[string]int{
	"16":   1,
	"256":  2,
	"4K":   3,
	"64K":  4,
	"1M":   5,
	"16M":  6,
	"256M": 7,
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	var scanner *bufio.Scanner
	var inputF *os.File
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		inputF = f
		scanner = bufio.NewScanner(f)
	} else {
		scanner = bufio.NewScanner(os.Stdin)
	}

	results := parseBenchmarks(scanner)

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	report := generateMarkdownReport(results)

	if *outputFile != "" {
		err := os.WriteFile(*outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			if inputF != nil {
				inputF.Close()
			}
			os.Exit(1)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
		}
	} else {
		fmt.Fprint(os.Stdout, report)
	}

	if inputF != nil {
		inputF.Close()
	}
}

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	// Regex to parse benchmark output lines
	// Benchmark_Cascade_AllocFree/cap=4K-8    10000    124.5 ns/op    0 B/op    0 allocs/op
	benchmarkRegex := regexp.MustCompile(
		`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+([\d.]+)\s+(?:B|MB)/op)?(?:\s+([\d.]+)\s+allocs/op)?`,
	)

	for scanner.Scan() {
		line := scanner.Text()

		// Tolerate JSON stream output (from go test -json)
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		name := matches[1]
		iterations, _ := strconv.Atoi(matches[2])
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)

		var bytesPerOp int64
		var allocsPerOp int64
		if matches[4] != "" {
			bytesPerOp, _ = strconv.ParseInt(matches[4], 10, 64)
		}
		if matches[5] != "" {
			allocsPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}

		operation, capacity := splitBenchmarkName(name)

		results = append(results, BenchmarkResult{
			Name:        name,
			Operation:   operation,
			Capacity:    capacity,
			Iterations:  iterations,
			NsPerOp:     nsPerOp,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Operation != results[j].Operation {
			return results[i].Operation < results[j].Operation
		}
		return cascadeLevels[results[i].Capacity] < cascadeLevels[results[j].Capacity]
	})

	return results
}

// splitBenchmarkName turns "Benchmark_Cascade_AllocFree/cap=4K-8" into
// ("Cascade_AllocFree", "4K"). The -N goroutine suffix is dropped; the
// capacity is empty for benchmarks without a cap= sub-benchmark.
func splitBenchmarkName(name string) (string, string) {
	parts := strings.Split(name, "/")

	operation := strings.TrimPrefix(parts[0], "Benchmark")
	operation = strings.TrimPrefix(operation, "_")

	capacity := ""
	last := parts[len(parts)-1]
	if dashIdx := strings.LastIndex(last, "-"); dashIdx > 0 {
		last = last[:dashIdx]
	}
	if len(parts) > 1 {
		capacity = strings.TrimPrefix(last, "cap=")
	} else if dashIdx := strings.LastIndex(operation, "-"); dashIdx > 0 {
		operation = operation[:dashIdx]
	}

	return operation, capacity
}

func generateMarkdownReport(results []BenchmarkResult) string {
	var sb strings.Builder

	sb.WriteString("# Benchmark Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Total results**: %d\n", len(results)))
	zeroAlloc := 0
	for _, r := range results {
		if r.AllocsPerOp == 0 {
			zeroAlloc++
		}
	}
	sb.WriteString(fmt.Sprintf("- **Zero-allocation results**: %d\n\n", zeroAlloc))

	// Depth scaling: operations measured at several capacities get a table
	// showing how cost grows per cascade level.
	byOp := make(map[string][]BenchmarkResult)
	var opOrder []string
	for _, r := range results {
		if r.Capacity == "" {
			continue
		}
		if _, seen := byOp[r.Operation]; !seen {
			opOrder = append(opOrder, r.Operation)
		}
		byOp[r.Operation] = append(byOp[r.Operation], r)
	}

	for _, op := range opOrder {
		group := byOp[op]
		if len(group) < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf("## Depth Scaling: %s\n\n", op))
		sb.WriteString("| Capacity | Levels | ns/op | vs previous |\n")
		sb.WriteString("|----------|--------|-------|-------------|\n")
		for i, r := range group {
			ratio := "-"
			if i > 0 && group[i-1].NsPerOp > 0 {
				ratio = fmt.Sprintf("%.2fx", r.NsPerOp/group[i-1].NsPerOp)
			}
			sb.WriteString(fmt.Sprintf("| %s | %d | %s | %s |\n",
				r.Capacity, cascadeLevels[r.Capacity], formatNumber(r.NsPerOp), ratio))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Detailed Results\n\n")
	sb.WriteString("| Operation | Capacity | ns/op | Memory (B/op) | Allocs |\n")
	sb.WriteString("|-----------|----------|-------|---------------|--------|\n")
	for _, r := range results {
		capacity := r.Capacity
		if capacity == "" {
			capacity = "-"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %d |\n",
			r.Operation,
			capacity,
			formatNumber(r.NsPerOp),
			formatBytes(r.BytesPerOp),
			r.AllocsPerOp,
		))
	}
	sb.WriteString("\n")

	sb.WriteString("## Notes\n\n")
	sb.WriteString("- **Levels**: allocator tree depth for the capacity; costs should track levels, not capacity\n")
	sb.WriteString("- **vs previous**: ratio against the next smaller capacity\n")
	sb.WriteString("- **Allocs**: steady-state operations are expected to be zero-allocation\n")

	return sb.String()
}

func formatNumber(n float64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.2fM", n/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.1f", n)
}

func formatBytes(b int64) string {
	if b >= 1024*1024 {
		return fmt.Sprintf("%.2fMB", float64(b)/(1024*1024))
	} else if b >= 1024 {
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	}
	return fmt.Sprintf("%dB", b)
}
