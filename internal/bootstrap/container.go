package bootstrap

import (
	"log"
	"time"

	"op-mental-be/internal/config"
	"op-mental-be/internal/controller"
	"op-mental-be/internal/pkg/logger"
	repository "op-mental-be/internal/repository/memory"
	"op-mental-be/internal/service"
	"op-mental-be/pkg/embedding"
	"op-mental-be/pkg/knowledge"
	"op-mental-be/pkg/llm/factory"
	"op-mental-be/pkg/rag/affect"
	"op-mental-be/pkg/rag/response"
	"op-mental-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	ChatController      controller.IChatController
	TherapyController   controller.ITherapyController
	MindsetController   controller.IMindsetController
	JournalController   controller.IJournalController
	KnowledgeController controller.IKnowledgeController

	// Background components (exposed for main.go to run)
	Reloader *knowledge.Reloader
	Logger   logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else if cfg.Ai.EmbeddingProvider == "gemini" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Keys.OpenAI, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OPENAI")
	}

	llmApiKey := cfg.Keys.OpenAI
	if cfg.Ai.LLMProvider == "huggingface" {
		llmApiKey = cfg.Keys.HuggingFace
	}
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		llmApiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Knowledge Base
	corpus := knowledge.NewDirSource(cfg.Knowledge.CorpusDir)
	retriever := knowledge.NewRetriever(embeddingProvider, corpus)
	if err := retriever.Rebuild(); err != nil {
		log.Printf("[WARN] Initial knowledge build failed, retrieval starts empty: %v", err)
	} else {
		log.Printf("[INFO] Knowledge base ready with %d documents", retriever.Len())
	}
	reloader := knowledge.NewReloader(pubSub, retriever)

	// 5. Session Storage
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	cleanup := time.Duration(cfg.Session.CleanupMinutes) * time.Minute
	chatSessions := repository.NewSessionRepository[store.ChatSession](ttl, cleanup)
	therapySessions := repository.NewSessionRepository[store.TherapySession](ttl, cleanup)
	mindsetSessions := repository.NewSessionRepository[store.MindsetSession](ttl, cleanup)
	journalSessions := repository.NewSessionRepository[store.JournalSession](ttl, cleanup)

	// 6. Services
	composer := response.NewComposer(llmProvider, log.Default())
	analyzer := affect.NewAnalyzer(embeddingProvider)

	chatService := service.NewChatService(chatSessions, embeddingProvider, retriever, composer, sysLogger)
	therapyService := service.NewTherapyService(therapySessions, composer, sysLogger)
	mindsetService := service.NewMindsetService(mindsetSessions, composer, sysLogger)
	journalService := service.NewJournalService(journalSessions, retriever, composer, analyzer, sysLogger)
	knowledgeService := service.NewKnowledgeService(retriever, pubSub, sysLogger)

	// 7. Controllers
	return &Container{
		ChatController:      controller.NewChatController(chatService),
		TherapyController:   controller.NewTherapyController(therapyService),
		MindsetController:   controller.NewMindsetController(mindsetService),
		JournalController:   controller.NewJournalController(journalService),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService),

		Reloader: reloader,
		Logger:   sysLogger,
	}
}
