package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/claimradar/claimradar/internal/model"
)

// Analyzer runs the full analysis flow over one document
type Analyzer interface {
	Analyze(ctx context.Context, content string, location model.Location) (*model.AnalysisResult, error)
}

// AnalyzeJob analyzes one document
type AnalyzeJob struct {
	Document string
	Location model.Location
	Analyzer Analyzer
}

// Execute runs the analysis for this job
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	result, err := j.Analyzer.Analyze(ctx, j.Document, j.Location)
	return &AnalyzeResult{
		Document: j.Document,
		Result:   result,
		Error:    err,
	}
}

// AnalyzeResult is the outcome of one document analysis
type AnalyzeResult struct {
	Document string
	Result   *model.AnalysisResult
	Error    error
}

// GetError returns the job error, if any
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple documents concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor over the given analyzer
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessDocuments analyzes all documents concurrently and returns results
// in completion order
func (b *BatchProcessor) ProcessDocuments(ctx context.Context, documents []string, location model.Location) []*AnalyzeResult {
	if len(documents) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	jobs := make([]Job, 0, len(documents))
	for _, doc := range documents {
		jobs = append(jobs, &AnalyzeJob{
			Document: doc,
			Location: location,
			Analyzer: b.analyzer,
		})
	}
	pool.SubmitAll(jobs)

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}

	return analyzeResults
}

// ProcessFile reads documents from a file and analyzes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string, location model.Location) ([]*AnalyzeResult, error) {
	documents, err := ReadDocumentsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}

	return b.ProcessDocuments(ctx, documents, location), nil
}

// ReadDocumentsFromFile reads one document per line, skipping blanks and
// '#' comments, deduplicated in input order
func ReadDocumentsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var documents []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			documents = append(documents, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return documents, nil
}
