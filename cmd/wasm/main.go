//go:build js && wasm

package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"syscall/js"
	"time"

	"textsum"
	"textsum/internal/adapter/memstore"
	"textsum/internal/domain"
)

var (
	store      *memstore.MemoryStore
	summarizer *textsum.Summarizer
)

func init() {
	store = memstore.NewMemoryStore()

	var err error
	summarizer, err = textsum.New(textsum.Options{})
	if err != nil {
		panic(err)
	}
}

func main() {
	c := make(chan struct{})

	js.Global().Set("textsumSummarize", js.FuncOf(summarize))
	js.Global().Set("textsumAdd", js.FuncOf(addDocument))
	js.Global().Set("textsumList", js.FuncOf(listSummaries))
	js.Global().Set("textsumClear", js.FuncOf(clearSummaries))

	<-c
}

func summarize(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: textsumSummarize(text, [n])")
	}

	text := args[0].String()
	n := 3
	if len(args) > 1 {
		n = args[1].Int()
	}

	analysis, err := summarizer.Analyze(text, n)
	if err != nil {
		return makeError("summarize failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"summary":  analysis.Summary,
		"selected": analysis.Selected,
		"scores":   analysis.Scores,
	})
}

func addDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: textsumAdd(filename, content, [n])")
	}

	filename := args[0].String()
	content := args[1].String()
	n := 3
	if len(args) > 2 {
		n = args[2].Int()
	}

	analysis, err := summarizer.Analyze(content, n)
	if err != nil {
		return makeError("summarize failed: " + err.Error())
	}

	now := time.Now().UTC()
	hash := sha256.Sum256([]byte(content))
	rec := domain.SummaryRecord{
		ID:          generateRecordID(filename),
		Path:        filename,
		ModTime:     now,
		ContentHash: hex.EncodeToString(hash[:]),
		Sentences:   n,
		Summary:     analysis.Summary,
		Selected:    analysis.Selected,
		CreatedAt:   now,
	}
	if err := store.PutSummary(rec); err != nil {
		return makeError("store failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"success":   true,
		"filename":  filename,
		"summary":   rec.Summary,
		"sentences": len(analysis.Sentences),
	})
}

func listSummaries(this js.Value, args []js.Value) interface{} {
	recs, err := store.ListSummaries()
	if err != nil {
		return makeError("list failed: " + err.Error())
	}

	output := make([]map[string]interface{}, 0, len(recs))
	for _, rec := range recs {
		output = append(output, map[string]interface{}{
			"path":    rec.Path,
			"summary": rec.Summary,
		})
	}

	return makeResult(map[string]interface{}{
		"summaries": output,
	})
}

func clearSummaries(this js.Value, args []js.Value) interface{} {
	store.Clear()
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func generateRecordID(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:8])
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
