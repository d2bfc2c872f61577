package app

import (
	"fmt"

	auditHTTP "github.com/allisson/redactor/internal/audit/http"
	auditRepository "github.com/allisson/redactor/internal/audit/repository"
	auditUseCase "github.com/allisson/redactor/internal/audit/usecase"
)

// OperationLogRepository returns the operation log repository.
func (c *Container) OperationLogRepository() (auditUseCase.OperationLogRepository, error) {
	var err error
	c.operationLogRepoInit.Do(func() {
		c.operationLogRepo, err = c.initOperationLogRepository()
		if err != nil {
			c.initErrors["operationLogRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["operationLogRepo"]; exists {
		return nil, storedErr
	}
	return c.operationLogRepo, nil
}

// AuditUseCase returns the operation audit use case.
func (c *Container) AuditUseCase() (auditUseCase.AuditUseCase, error) {
	var err error
	c.auditUseCaseInit.Do(func() {
		c.auditUseCase, err = c.initAuditUseCase()
		if err != nil {
			c.initErrors["auditUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditUseCase"]; exists {
		return nil, storedErr
	}
	return c.auditUseCase, nil
}

// OperationLogHandler returns the HTTP handler for the audit log.
func (c *Container) OperationLogHandler() (*auditHTTP.OperationLogHandler, error) {
	var err error
	c.operationLogHandlerInit.Do(func() {
		c.operationLogHandler, err = c.initOperationLogHandler()
		if err != nil {
			c.initErrors["operationLogHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["operationLogHandler"]; exists {
		return nil, storedErr
	}
	return c.operationLogHandler, nil
}

// initOperationLogRepository creates the operation log repository.
func (c *Container) initOperationLogRepository() (auditUseCase.OperationLogRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for operation log repository: %w", err)
	}
	return auditRepository.NewSQLiteOperationLogRepository(db), nil
}

// initAuditUseCase creates the audit use case.
func (c *Container) initAuditUseCase() (auditUseCase.AuditUseCase, error) {
	repo, err := c.OperationLogRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get operation log repository for audit use case: %w", err)
	}
	return auditUseCase.NewAuditUseCase(repo), nil
}

// initOperationLogHandler creates the audit log handler.
func (c *Container) initOperationLogHandler() (*auditHTTP.OperationLogHandler, error) {
	audit, err := c.AuditUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit use case for operation log handler: %w", err)
	}
	return auditHTTP.NewOperationLogHandler(audit, c.Logger()), nil
}
