package analyzer

import "github.com/rios0rios0/gitinsight/internal/domain/entities"

// ScoreFile exports the per-file scoring for testing, already clamped.
func (it *Analyzer) ScoreFile(file entities.SourceFile) entities.Analysis {
	return it.score(file).analysis()
}
