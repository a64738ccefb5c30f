package config

// NewIdentityForTest creates an Identity config for testing purposes
func NewIdentityForTest(baseURL, jwksURL, noAuthnEmail, noAuthnName string) *Identity {
	return &Identity{
		baseURL:      baseURL,
		jwksURL:      jwksURL,
		noAuthnEmail: noAuthnEmail,
		noAuthnName:  noAuthnName,
	}
}

// NewLLMForTest creates an LLM config for testing purposes
func NewLLMForTest(provider, openaiAPIKey, openaiModel, geminiProjectID, geminiLocation string) *LLM {
	return &LLM{
		provider:        provider,
		openaiAPIKey:    openaiAPIKey,
		openaiModel:     openaiModel,
		geminiProjectID: geminiProjectID,
		geminiLocation:  geminiLocation,
	}
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, projectID, databaseID string) *Repository {
	return &Repository{
		backend:    backend,
		projectID:  projectID,
		databaseID: databaseID,
	}
}

// NewStorageForTest creates a Storage config for testing purposes
func NewStorageForTest(backend, bucket, prefix string) *Storage {
	return &Storage{
		backend: backend,
		bucket:  bucket,
		prefix:  prefix,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

var (
	ParseLogLevel  = parseLogLevel
	ParseLogFormat = parseLogFormat
)
