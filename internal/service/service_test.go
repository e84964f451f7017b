package service

import (
	"io"
	"log"
	"time"

	repository "op-mental-be/internal/repository/memory"
	"op-mental-be/pkg/embedding/embeddingtest"
	"op-mental-be/pkg/knowledge"
	"op-mental-be/pkg/llm/llmtest"
	"op-mental-be/pkg/rag/affect"
	"op-mental-be/pkg/rag/response"
	"op-mental-be/pkg/store"
)

// nopLogger satisfies logger.ILogger without output.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func testComposer(llmResponse string) *response.Composer {
	return stubComposer(&llmtest.StubProvider{Response: llmResponse})
}

func stubComposer(stub *llmtest.StubProvider) *response.Composer {
	return response.NewComposer(stub, log.New(io.Discard, "", 0))
}

func testRetriever(docs []knowledge.Document) *knowledge.Retriever {
	retriever := knowledge.NewRetriever(embeddingtest.New(), &knowledge.StaticSource{Documents: docs})
	if err := retriever.Rebuild(); err != nil {
		panic(err)
	}
	return retriever
}

func testAnalyzer() *affect.Analyzer {
	return affect.NewAnalyzer(embeddingtest.New())
}

func newChatRepo() *repository.SessionRepository[store.ChatSession] {
	return repository.NewSessionRepository[store.ChatSession](time.Hour, time.Hour)
}

func newTherapyRepo() *repository.SessionRepository[store.TherapySession] {
	return repository.NewSessionRepository[store.TherapySession](time.Hour, time.Hour)
}

func newMindsetRepo() *repository.SessionRepository[store.MindsetSession] {
	return repository.NewSessionRepository[store.MindsetSession](time.Hour, time.Hour)
}

func newJournalRepo() *repository.SessionRepository[store.JournalSession] {
	return repository.NewSessionRepository[store.JournalSession](time.Hour, time.Hour)
}
