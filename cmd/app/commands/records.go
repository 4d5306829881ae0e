package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	medicationDTO "github.com/allisson/mediport/internal/medication/http/dto"
	medicationUseCase "github.com/allisson/mediport/internal/medication/usecase"
	patientDomain "github.com/allisson/mediport/internal/patient/domain"
	patientDTO "github.com/allisson/mediport/internal/patient/http/dto"
	patientUseCase "github.com/allisson/mediport/internal/patient/usecase"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

// RunPatients lists the patients visible to the logged-in operator. Requires view_patients.
// The operator's role is resolved through identities on every run.
func RunPatients(
	ctx context.Context,
	useCase patientUseCase.PatientUseCase,
	credentials sessionDomain.Getter,
	identities IdentityResolver,
	writer io.Writer,
	search string,
	tab string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	principal, err := verifiedPrincipal(ctx, credentials, identities)
	if err != nil {
		return err
	}

	patients, err := useCase.List(ctx, principal, patientDomain.Filter{
		Search: search,
		Tab:    patientDomain.ParseTab(tab),
	})
	if err != nil {
		return fmt.Errorf("failed to list patients: %w", err)
	}

	if format == FormatJSON {
		return writeJSON(writer, patientDTO.MapPatientsToListResponse(patients))
	}

	w := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBED\tROOM\tSTATE\tADMITTED")
	for _, p := range patients {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.FullName(), p.BedID, p.Room, p.PatientState, p.AdmissionDate)
	}
	return w.Flush()
}

// RunMedications lists the medication inventory. Requires view_medications.
func RunMedications(
	ctx context.Context,
	useCase medicationUseCase.MedicationUseCase,
	credentials sessionDomain.Getter,
	identities IdentityResolver,
	writer io.Writer,
	search string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	principal, err := verifiedPrincipal(ctx, credentials, identities)
	if err != nil {
		return err
	}

	medications, err := useCase.List(ctx, principal, search)
	if err != nil {
		return fmt.Errorf("failed to list medications: %w", err)
	}

	if format == FormatJSON {
		return writeJSON(writer, medicationDTO.MapMedicationsToListResponse(medications))
	}

	w := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tSTRENGTH\tFORM\tPRICE\tSTOCK\tIN STOCK")
	for _, m := range medications {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.2f\t%d\t%t\n",
			m.ID, m.IDMedicament, m.Denumire, m.Concentratie, m.FormaFarmaceutica, m.Pret, m.Stoc, m.InStock())
	}
	return w.Flush()
}
