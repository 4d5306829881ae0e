package app

import (
	"fmt"
	"sync"

	medicationHTTP "github.com/allisson/mediport/internal/medication/http"
	medicationUseCase "github.com/allisson/mediport/internal/medication/usecase"
	patientHTTP "github.com/allisson/mediport/internal/patient/http"
	patientUseCase "github.com/allisson/mediport/internal/patient/usecase"
	rbacHTTP "github.com/allisson/mediport/internal/rbac/http"
	userHTTP "github.com/allisson/mediport/internal/user/http"
	userUseCase "github.com/allisson/mediport/internal/user/usecase"
)

// recordsComponents holds the use cases served by the remote records API.
type recordsComponents struct {
	patientUseCase    patientUseCase.PatientUseCase
	medicationUseCase medicationUseCase.MedicationUseCase
	userUseCase       userUseCase.UserUseCase

	patientUseCaseInit    sync.Once
	medicationUseCaseInit sync.Once
	userUseCaseInit       sync.Once
}

// PatientUseCase returns the patient use case, wrapped with metrics when enabled.
func (c *Container) PatientUseCase() (patientUseCase.PatientUseCase, error) {
	var err error
	c.patientUseCaseInit.Do(func() {
		c.patientUseCase, err = c.initPatientUseCase()
		if err != nil {
			c.initErrors["patientUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["patientUseCase"]; exists {
		return nil, storedErr
	}
	return c.patientUseCase, nil
}

// MedicationUseCase returns the medication use case, wrapped with metrics when enabled.
func (c *Container) MedicationUseCase() (medicationUseCase.MedicationUseCase, error) {
	var err error
	c.medicationUseCaseInit.Do(func() {
		c.medicationUseCase, err = c.initMedicationUseCase()
		if err != nil {
			c.initErrors["medicationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["medicationUseCase"]; exists {
		return nil, storedErr
	}
	return c.medicationUseCase, nil
}

// UserUseCase returns the staff account use case, wrapped with metrics when enabled.
func (c *Container) UserUseCase() (userUseCase.UserUseCase, error) {
	var err error
	c.userUseCaseInit.Do(func() {
		c.userUseCase, err = c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

func (c *Container) initPatientUseCase() (patientUseCase.PatientUseCase, error) {
	apiClient, err := c.APIClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get api client for patient use case: %w", err)
	}

	baseUseCase := patientUseCase.NewPatientUseCase(apiClient, c.Policy())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for patient use case: %w", err)
		}
		return patientUseCase.NewPatientUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initMedicationUseCase() (medicationUseCase.MedicationUseCase, error) {
	apiClient, err := c.APIClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get api client for medication use case: %w", err)
	}

	baseUseCase := medicationUseCase.NewMedicationUseCase(apiClient, c.Policy())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for medication use case: %w", err)
		}
		return medicationUseCase.NewMedicationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initUserUseCase() (userUseCase.UserUseCase, error) {
	apiClient, err := c.APIClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get api client for user use case: %w", err)
	}

	baseUseCase := userUseCase.NewUserUseCase(apiClient, c.Policy())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
		}
		return userUseCase.NewUserUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) permissionHandler() *rbacHTTP.PermissionHandler {
	return rbacHTTP.NewPermissionHandler(c.Policy(), c.Logger())
}

func (c *Container) patientHandler(useCase patientUseCase.PatientUseCase) *patientHTTP.PatientHandler {
	return patientHTTP.NewPatientHandler(useCase, c.Logger())
}

func (c *Container) medicationHandler(useCase medicationUseCase.MedicationUseCase) *medicationHTTP.MedicationHandler {
	return medicationHTTP.NewMedicationHandler(useCase, c.Logger())
}

func (c *Container) userHandler(useCase userUseCase.UserUseCase) *userHTTP.UserHandler {
	return userHTTP.NewUserHandler(useCase, c.Logger())
}
