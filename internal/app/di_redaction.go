package app

import (
	"fmt"

	redactionHTTP "github.com/allisson/redactor/internal/redaction/http"
	redactionRepository "github.com/allisson/redactor/internal/redaction/repository"
	redactionUseCase "github.com/allisson/redactor/internal/redaction/usecase"
	tokenmapRepository "github.com/allisson/redactor/internal/tokenmap/repository"
)

// TokenMapRepository returns the file-based token map store.
func (c *Container) TokenMapRepository() redactionUseCase.TokenMapRepository {
	c.tokenMapRepoInit.Do(func() {
		c.tokenMapRepo = tokenmapRepository.NewFilesystemRepository(c.config.MapStoragePath)
	})
	return c.tokenMapRepo
}

// ArtifactRepository returns the file store for redacted and restored documents.
func (c *Container) ArtifactRepository() redactionUseCase.ArtifactRepository {
	c.artifactRepoInit.Do(func() {
		c.artifactRepo = redactionRepository.NewFilesystemRepository(
			c.config.RedactedOutputPath,
			c.config.RestoredOutputPath,
		)
	})
	return c.artifactRepo
}

// DocumentLocker returns the per-document lock shared by the redaction and
// inline use cases.
func (c *Container) DocumentLocker() *redactionUseCase.DocumentLocker {
	c.documentLockerInit.Do(func() {
		c.documentLocker = redactionUseCase.NewDocumentLocker()
	})
	return c.documentLocker
}

// RedactionUseCase returns the document redaction use case.
func (c *Container) RedactionUseCase() (redactionUseCase.RedactionUseCase, error) {
	var err error
	c.redactionUseCaseInit.Do(func() {
		c.redactionUseCase, err = c.initRedactionUseCase()
		if err != nil {
			c.initErrors["redactionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["redactionUseCase"]; exists {
		return nil, storedErr
	}
	return c.redactionUseCase, nil
}

// RestorationUseCase returns the document restoration use case.
func (c *Container) RestorationUseCase() (redactionUseCase.RestorationUseCase, error) {
	var err error
	c.restorationUseCaseInit.Do(func() {
		c.restorationUseCase, err = c.initRestorationUseCase()
		if err != nil {
			c.initErrors["restorationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["restorationUseCase"]; exists {
		return nil, storedErr
	}
	return c.restorationUseCase, nil
}

// InlineUseCase returns the fragment redaction use case.
func (c *Container) InlineUseCase() (redactionUseCase.InlineUseCase, error) {
	var err error
	c.inlineUseCaseInit.Do(func() {
		c.inlineUseCase, err = c.initInlineUseCase()
		if err != nil {
			c.initErrors["inlineUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["inlineUseCase"]; exists {
		return nil, storedErr
	}
	return c.inlineUseCase, nil
}

// DocumentHandler returns the HTTP handler for redaction operations.
func (c *Container) DocumentHandler() (*redactionHTTP.DocumentHandler, error) {
	var err error
	c.documentHandlerInit.Do(func() {
		c.documentHandler, err = c.initDocumentHandler()
		if err != nil {
			c.initErrors["documentHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["documentHandler"]; exists {
		return nil, storedErr
	}
	return c.documentHandler, nil
}

// initRedactionUseCase creates the redaction use case with all its dependencies.
func (c *Container) initRedactionUseCase() (redactionUseCase.RedactionUseCase, error) {
	monitor, err := c.HealthMonitor()
	if err != nil {
		return nil, fmt.Errorf("failed to get health monitor for redaction use case: %w", err)
	}

	detector, err := c.DetectorClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get detector client for redaction use case: %w", err)
	}

	audit, err := c.AuditUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit use case for redaction use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for redaction use case: %w", err)
	}

	useCase := redactionUseCase.NewRedactionUseCase(
		monitor,
		detector,
		c.ArtifactRepository(),
		c.TokenMapRepository(),
		audit,
		c.DocumentLocker(),
		c.Logger(),
	)
	return redactionUseCase.NewRedactionUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initRestorationUseCase creates the restoration use case with all its dependencies.
func (c *Container) initRestorationUseCase() (redactionUseCase.RestorationUseCase, error) {
	monitor, err := c.HealthMonitor()
	if err != nil {
		return nil, fmt.Errorf("failed to get health monitor for restoration use case: %w", err)
	}

	detector, err := c.DetectorClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get detector client for restoration use case: %w", err)
	}

	audit, err := c.AuditUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit use case for restoration use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for restoration use case: %w", err)
	}

	useCase := redactionUseCase.NewRestorationUseCase(
		monitor,
		detector,
		c.ArtifactRepository(),
		c.TokenMapRepository(),
		audit,
		c.Logger(),
	)
	return redactionUseCase.NewRestorationUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initInlineUseCase creates the inline redaction use case with all its dependencies.
func (c *Container) initInlineUseCase() (redactionUseCase.InlineUseCase, error) {
	monitor, err := c.HealthMonitor()
	if err != nil {
		return nil, fmt.Errorf("failed to get health monitor for inline use case: %w", err)
	}

	detector, err := c.DetectorClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get detector client for inline use case: %w", err)
	}

	audit, err := c.AuditUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit use case for inline use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for inline use case: %w", err)
	}

	useCase := redactionUseCase.NewInlineUseCase(
		monitor,
		detector,
		c.TokenMapRepository(),
		audit,
		c.DocumentLocker(),
		c.Logger(),
	)
	return redactionUseCase.NewInlineUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initDocumentHandler creates the document handler with all its dependencies.
func (c *Container) initDocumentHandler() (*redactionHTTP.DocumentHandler, error) {
	redaction, err := c.RedactionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get redaction use case for document handler: %w", err)
	}

	restoration, err := c.RestorationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get restoration use case for document handler: %w", err)
	}

	inline, err := c.InlineUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get inline use case for document handler: %w", err)
	}

	monitor, err := c.HealthMonitor()
	if err != nil {
		return nil, fmt.Errorf("failed to get health monitor for document handler: %w", err)
	}

	return redactionHTTP.NewDocumentHandler(redaction, restoration, inline, monitor, c.Logger()), nil
}
