package dependency_container

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/app/mediasafety"
	"github.com/NeuralTrust/TrustPost/pkg/app/submission"
	"github.com/NeuralTrust/TrustPost/pkg/app/textmod"
	"github.com/NeuralTrust/TrustPost/pkg/common"
	"github.com/NeuralTrust/TrustPost/pkg/config"
	"github.com/NeuralTrust/TrustPost/pkg/domain/audit"
	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	handlers "github.com/NeuralTrust/TrustPost/pkg/handlers/http"
	wsHandlers "github.com/NeuralTrust/TrustPost/pkg/handlers/websocket"
	"github.com/NeuralTrust/TrustPost/pkg/infra/auditlogs"
	"github.com/NeuralTrust/TrustPost/pkg/infra/cache"
	"github.com/NeuralTrust/TrustPost/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustPost/pkg/infra/database"
	"github.com/NeuralTrust/TrustPost/pkg/infra/encoder"
	"github.com/NeuralTrust/TrustPost/pkg/infra/frames"
	"github.com/NeuralTrust/TrustPost/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustPost/pkg/infra/imageclassifier"
	"github.com/NeuralTrust/TrustPost/pkg/infra/jwt"
	"github.com/NeuralTrust/TrustPost/pkg/infra/providers"
	providersFactory "github.com/NeuralTrust/TrustPost/pkg/infra/providers/factory"
	"github.com/NeuralTrust/TrustPost/pkg/infra/ratelimit"
	"github.com/NeuralTrust/TrustPost/pkg/infra/repository"
	"github.com/NeuralTrust/TrustPost/pkg/infra/storage"
	"github.com/NeuralTrust/TrustPost/pkg/infra/telemetry/kafka"
	infraWebsocket "github.com/NeuralTrust/TrustPost/pkg/infra/websocket"
	"github.com/NeuralTrust/TrustPost/pkg/middleware"
	"github.com/NeuralTrust/TrustPost/pkg/version"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const submissionLockTTL = 5 * time.Minute

type Container struct {
	Redis               *redis.Client
	RedisListener       cache.EventListener
	ProgressHub         *submission.ProgressHub
	AuditLogsService    auditlogs.Service
	MiddlewareTransport middleware.Transport
	HandlerTransport    handlers.HandlerTransport
	WSHandlerTransport  wsHandlers.HandlerTransport
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	DB     *database.DB
}

func NewContainer(ctx context.Context, di ContainerDI) (*Container, error) {
	cfg := di.Cfg
	logger := di.Logger

	httpClient := httpx.NewFastHTTPClient(
		httpx.WithUserAgent(version.UserAgent()),
		httpx.WithTimeout(cfg.Media.Encoder.Timeout),
	)

	redisClient, err := cache.NewClient(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	// progress events travel over redis so any instance can serve the stream
	redisPublisher := cache.NewRedisEventPublisher(redisClient)
	redisListener := cache.NewRedisEventListener(logger, redisClient, event.Registry)
	progressHub := submission.NewProgressHub(cfg.Server.ProgressRetention)
	cache.RegisterEventSubscriber[event.SubmissionProgressEvent](
		redisListener,
		submission.NewProgressSubscriber(progressHub, logger),
	)

	// repository
	auditRepository := repository.NewAuditRepository(di.DB.DB)
	invocationRepository := repository.NewInvocationRepository(di.DB.DB)
	postRepository := repository.NewPostRepository(di.DB.DB)

	auditLogsService, err := newAuditLogsService(cfg, auditRepository, logger,
		auditlogs.WithContentResolver(auditlogs.NewPostResolver(postRepository, logger)),
	)
	if err != nil {
		return nil, err
	}

	// text moderation
	engine, err := newTextEngine(cfg, httpClient, invocationRepository, logger)
	if err != nil {
		return nil, err
	}

	// media safety
	if err := os.MkdirAll(cfg.Media.FFmpeg.WorkDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create media work dir: %w", err)
	}
	extractor := frames.NewFFmpegExtractor(frames.Config{
		FFmpegPath:  cfg.Media.FFmpeg.FFmpegPath,
		FFprobePath: cfg.Media.FFmpeg.FFprobePath,
	})
	encoderClient := encoder.NewClient(encoder.Config{
		BaseURL: cfg.Media.Encoder.BaseURL,
		Timeout: cfg.Media.Encoder.Timeout,
	}, httpClient, logger)
	classifierClient := imageclassifier.NewClient(imageclassifier.Config{
		BaseURL: cfg.Media.Classifier.BaseURL,
		Timeout: cfg.Media.Classifier.Timeout,
	}, httpClient, logger)
	classifierManager := mediasafety.NewClassifierManager(classifierClient, cfg.Media.Classifier.TopK, logger)

	safety := cfg.Media.Safety
	analyzer := mediasafety.NewAnalyzer(mediasafety.AnalyzerConfig{
		Bands: mediasafety.SkinBands{
			MinY:  safety.SkinMinY,
			MinCb: safety.SkinMinCb,
			MaxCb: safety.SkinMaxCb,
			MinCr: safety.SkinMinCr,
			MaxCr: safety.SkinMaxCr,
		},
		MinPixels:         safety.MinPixels,
		SkinThreshold:     safety.SkinThreshold,
		MaxFrameDimension: safety.MaxFrameDimension,
		Thresholds: mediasafety.ModelThresholds{
			Porn:     safety.PornThreshold,
			Sexy:     safety.SexyThreshold,
			TopLabel: safety.TopLabelThreshold,
		},
	}, classifierManager.Get(cfg.Media.Classifier.Model), logger)
	sampler := mediasafety.NewFrameSampler(extractor, analyzer, safety.FrameRatios, logger)
	enforcer := mediasafety.NewConstraintEnforcer(
		mediaLimits(cfg.Media),
		extractor,
		encoderClient,
		cfg.Media.FFmpeg.WorkDir,
		logger,
	)
	prefilter := mediasafety.NewPrefilter(enforcer, analyzer, sampler, logger)

	objectStorage, err := storage.NewS3Storage(ctx, storage.Config{
		Bucket:       cfg.Storage.Bucket,
		Region:       cfg.Storage.Region,
		Endpoint:     cfg.Storage.Endpoint,
		UsePathStyle: cfg.Storage.UsePathStyle,
		KeyPrefix:    cfg.Storage.KeyPrefix,
		UploadTTL:    cfg.Storage.UploadTTL,
		DownloadTTL:  cfg.Storage.DownloadTTL,
	}, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}

	var limiter ratelimit.Limiter = ratelimit.Noop{}
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.NewRedisLimiter(redisClient, cfg.RateLimit.Limit, cfg.RateLimit.Window, nil)
	}

	orchestrator := submission.NewOrchestrator(
		submission.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			MaxFilesPerPost:  cfg.Media.MaxFilesPerPost,
		},
		limiter,
		prefilter,
		objectStorage,
		engine,
		postRepository,
		auditLogsService,
		submission.NewRedisProgressPublisher(redisPublisher),
		submission.NewGuard(cache.NewLocker(redisClient, submissionLockTTL, uuid.New)),
		logger,
	)

	jwtManager := jwt.NewJwtManager(&cfg.JWT)

	middlewareTransport := middleware.Transport{
		AuthMiddleware:         middleware.NewAuthMiddleware(logger, jwtManager),
		ModeratorMiddleware:    middleware.NewModeratorMiddleware(logger),
		ClientInfoMiddleware:   middleware.NewClientInfoMiddleware(),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		CORSMiddleware: middleware.NewCORSGlobalMiddleware(
			cfg.Server.CORSAllowedOrigins,
			[]string{"GET", "POST", "OPTIONS"},
			false,
			[]string{middleware.RequestIDHeader, common.RetryAfterHeader},
			"600",
		),
		WebsocketMiddleware: middleware.NewWebsocketMiddleware(
			logger,
			infraWebsocket.NewSemaphore(cfg.Server.WebsocketMaxConnections),
		),
	}

	handlerTransport := handlers.HandlerTransport{
		CreatePostHandler:    handlers.NewCreatePostHandler(logger, orchestrator, cfg.Media.FFmpeg.WorkDir),
		CreateCommentHandler: handlers.NewCreateCommentHandler(logger, orchestrator),
		ModerateTextHandler:  handlers.NewModerateTextHandler(logger, engine),
		CreateUploadURLHandler: handlers.NewCreateUploadURLHandler(
			logger,
			objectStorage,
			append(append([]string{}, cfg.Media.AllowedImageTypes...), cfg.Media.AllowedVideoTypes...),
		),
		ListAuditLogsHandler:   handlers.NewListAuditLogsHandler(logger, auditLogsService),
		ResolveAuditLogHandler: handlers.NewResolveAuditLogHandler(logger, auditLogsService),
		GetVersionHandler:      handlers.NewGetVersionHandler(logger),
		HealthHandler: handlers.NewHealthHandler(logger, map[string]handlers.HealthCheck{
			"database": di.DB.Ping,
			"redis": func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
		}),
	}

	wsHandlerTransport := &wsHandlers.HandlerTransportDTO{
		ProgressHandler: wsHandlers.NewProgressHandler(logger, progressHub, wsHandlers.ProgressHandlerOptions{
			IdleTimeout: cfg.Server.ProgressRetention,
		}),
	}

	return &Container{
		Redis:               redisClient,
		RedisListener:       redisListener,
		ProgressHub:         progressHub,
		AuditLogsService:    auditLogsService,
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		WSHandlerTransport:  wsHandlerTransport,
	}, nil
}

func newAuditLogsService(
	cfg *config.Config,
	repo audit.Repository,
	logger *logrus.Logger,
	opts ...auditlogs.Option,
) (auditlogs.Service, error) {
	if !cfg.Kafka.Enabled {
		return auditlogs.NewService(repo, logger, opts...), nil
	}
	exporter, err := kafka.NewKafkaExporter(kafka.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	if err != nil {
		logger.WithError(err).Warn("failed to initialize kafka exporter, audit entries will not be exported")
		return auditlogs.NewService(repo, logger, opts...), nil
	}
	return auditlogs.NewService(repo, logger, append(opts, auditlogs.WithExporter(exporter, 0))...), nil
}

func newTextEngine(
	cfg *config.Config,
	httpClient httpx.Client,
	invocations moderation.InvocationRepository,
	logger *logrus.Logger,
) (textmod.Engine, error) {
	m := cfg.Moderation
	creds, err := cfg.Providers.Credentials(m.Provider)
	if err != nil {
		return nil, err
	}
	rules, unknown := textmod.NewRules(m.Blocklist)
	if len(unknown) > 0 {
		logger.WithField("categories", unknown).Warn("ignoring blocklist entries for unknown categories")
	}
	pricing := make(map[string]textmod.Price, len(m.Pricing))
	for model, p := range m.Pricing {
		pricing[model] = textmod.Price{Prompt: p.Prompt, Completion: p.Completion}
	}
	return textmod.NewEngine(
		textmod.Config{
			Provider:      m.Provider,
			Model:         m.Model,
			MaxTokens:     m.MaxTokens,
			Temperature:   m.Temperature,
			Timeout:       m.Timeout,
			MinTextLength: m.MinTextLength,
			Thresholds: moderation.Thresholds{
				ReviewLow: m.ReviewThreshold,
				Reject:    m.RejectThreshold,
			},
			Credentials: providerCredentials(creds),
			Pricing:     pricing,
		},
		providersFactory.NewProviderLocator(httpClient),
		rules,
		invocations,
		logger,
	), nil
}

func providerCredentials(c config.ProviderCredentials) providers.Credentials {
	creds := providers.Credentials{ApiKey: c.ApiKey}
	if c.Endpoint != "" {
		creds.Azure = &providers.AzureCredentials{
			Endpoint:    c.Endpoint,
			ApiVersion:  c.ApiVersion,
			UseIdentity: c.UseManagedID,
		}
	}
	if c.AwsRegion != "" || c.AwsAccessKey != "" || c.AwsRoleARN != "" {
		creds.AwsBedrock = &providers.AwsCredentials{
			AccessKey: c.AwsAccessKey,
			SecretKey: c.AwsSecretKey,
			Region:    c.AwsRegion,
			UseRole:   c.AwsRoleARN != "",
			RoleARN:   c.AwsRoleARN,
		}
	}
	return creds
}

func mediaLimits(m config.MediaConfig) mediasafety.Limits {
	return mediasafety.Limits{
		MaxImageBytes:       m.MaxImageBytes,
		MaxVideoSourceBytes: m.MaxVideoSourceBytes,
		TargetVideoBytes:    m.TargetVideoBytes,
		MaxVideoBytes:       m.MaxVideoBytes,
		MaxVideoDuration:    m.MaxVideoDuration,
		AllowedImageTypes:   m.AllowedImageTypes,
		AllowedVideoTypes:   m.AllowedVideoTypes,
		Compression: mediasafety.CompressionSettings{
			VideoShare:       m.Compression.VideoShare,
			AudioBitrateKbps: m.Compression.AudioBitrateKbps,
			MinBitrateKbps:   m.Compression.MinBitrateKbps,
			MaxBitrateKbps:   m.Compression.MaxBitrateKbps,
			MaxHeight:        m.Compression.MaxHeight,
		},
	}
}
