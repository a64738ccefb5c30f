package usecase

import (
	"time"

	"github.com/complypilot/complypilot/pkg/catalog"
	"github.com/complypilot/complypilot/pkg/domain/interfaces"
	"github.com/complypilot/complypilot/pkg/service/analysis"
	"github.com/complypilot/complypilot/pkg/service/storage"
)

type UseCases struct {
	repo            interfaces.Repository
	catalog         *catalog.Catalog
	blobStore       storage.Service
	analyzer        analysis.Service
	analysisTimeout time.Duration

	Auth         AuthUseCaseInterface
	Profile      *ProfileUseCase
	HealthCheck  *HealthCheckUseCase
	Document     *DocumentUseCase
	RiskRegister *RiskRegisterUseCase
	Dashboard    *DashboardUseCase
	Subscription *SubscriptionUseCase
}

type Option func(*UseCases)

func WithAuth(auth AuthUseCaseInterface) Option {
	return func(uc *UseCases) {
		uc.Auth = auth
	}
}

func WithBlobStore(svc storage.Service) Option {
	return func(uc *UseCases) {
		uc.blobStore = svc
	}
}

func WithAnalyzer(svc analysis.Service) Option {
	return func(uc *UseCases) {
		uc.analyzer = svc
	}
}

func WithAnalysisTimeout(d time.Duration) Option {
	return func(uc *UseCases) {
		uc.analysisTimeout = d
	}
}

func New(repo interfaces.Repository, cat *catalog.Catalog, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:            repo,
		catalog:         cat,
		analysisTimeout: defaultAnalysisTimeout,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Profile = NewProfileUseCase(repo)
	uc.HealthCheck = NewHealthCheckUseCase(repo, cat)
	uc.Document = NewDocumentUseCase(repo, uc.blobStore, uc.analyzer, uc.analysisTimeout)
	uc.RiskRegister = NewRiskRegisterUseCase(repo, cat)
	uc.Dashboard = NewDashboardUseCase(repo)
	uc.Subscription = NewSubscriptionUseCase(repo)

	return uc
}
