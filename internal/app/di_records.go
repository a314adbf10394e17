package app

import (
	"fmt"

	recordsRepository "github.com/allisson/fieldvault/internal/records/repository"
	recordsUsecase "github.com/allisson/fieldvault/internal/records/usecase"
)

// RecordRepository returns the record repository instance.
func (c *Container) RecordRepository() (recordsUsecase.RecordRepository, error) {
	c.recordRepoInit.Do(func() {
		recordRepo, err := c.initRecordRepository()
		if err != nil {
			c.initErrors["recordRepo"] = err
			return
		}
		c.recordRepo = recordRepo
	})
	if storedErr, exists := c.initErrors["recordRepo"]; exists {
		return nil, storedErr
	}
	return c.recordRepo, nil
}

// RecordUseCase returns the record use case instance, wrapped with business
// metrics when metrics are enabled.
func (c *Container) RecordUseCase() (recordsUsecase.RecordUseCase, error) {
	c.recordUseCaseInit.Do(func() {
		recordUseCase, err := c.initRecordUseCase()
		if err != nil {
			c.initErrors["recordUseCase"] = err
			return
		}
		c.recordUseCase = recordUseCase
	})
	if storedErr, exists := c.initErrors["recordUseCase"]; exists {
		return nil, storedErr
	}
	return c.recordUseCase, nil
}

// initRecordRepository creates the record repository instance.
func (c *Container) initRecordRepository() (recordsUsecase.RecordRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for record repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return recordsRepository.NewMySQLRecordRepository(db), nil
	case "postgres":
		return recordsRepository.NewPostgreSQLRecordRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initRecordUseCase creates the record use case with all its dependencies.
func (c *Container) initRecordUseCase() (recordsUsecase.RecordUseCase, error) {
	recordRepo, err := c.RecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get record repository for record use case: %w", err)
	}

	protector, err := c.FieldProtector()
	if err != nil {
		return nil, fmt.Errorf("failed to get field protector for record use case: %w", err)
	}

	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for record use case: %w", err)
	}

	useCase := recordsUsecase.NewRecordUseCaseService(recordRepo, protector, txManager, c.Logger())

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for record use case: %w", err)
	}

	return recordsUsecase.NewMetricsRecordUseCase(useCase, businessMetrics), nil
}
