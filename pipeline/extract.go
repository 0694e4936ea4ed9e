package pipeline

import (
	"log"
	"sync"
	"time"

	"newspulse/providers"
	"newspulse/types"

	readability "github.com/go-shiori/go-readability"
)

const (
	extractWorkers   = 5
	extractorTimeout = 30 * time.Second
)

// EnrichSummaries fills in missing summaries by extracting readable content
// from the article page, using a small worker pool. Extraction failures are
// logged and leave the article untouched; a missing summary stays a valid
// state.
func EnrichSummaries(articles []*types.Article) {
	var wg sync.WaitGroup
	articleChan := make(chan *types.Article, len(articles))

	for i := 0; i < extractWorkers; i++ {
		go func(workerID int) {
			for article := range articleChan {
				if err := extractSummary(article); err != nil {
					log.Printf("[Worker %d] Failed to extract %s: %v", workerID, article.URL, err)
				}
				wg.Done()
			}
		}(i)
	}

	for _, article := range articles {
		if article.Summary != "" || article.URL == "" {
			continue
		}
		wg.Add(1)
		articleChan <- article
	}

	wg.Wait()
	close(articleChan)
}

func extractSummary(article *types.Article) error {
	extracted, err := readability.FromURL(article.URL, extractorTimeout)
	if err != nil {
		return err
	}

	if extracted.Excerpt != "" {
		article.Summary = providers.StripHTML(extracted.Excerpt)
	} else if extracted.TextContent != "" {
		article.Summary = truncate(providers.StripHTML(extracted.TextContent), 400)
	}

	if article.ImageURL == "" {
		article.ImageURL = extracted.Image
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
