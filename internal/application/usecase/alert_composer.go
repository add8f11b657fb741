package usecase

import (
	"fmt"
	"strings"

	"github.com/diillson/aws-cost-alert-go/internal/domain/entity"
	"github.com/diillson/aws-cost-alert-go/internal/shared/types"
)

// ComposeAlert monta o assunto e o corpo do alerta de uma conta.
//
// Only the first maxServices entries of the ranked costs are listed; a value
// below 1 falls back to the default of 10.
func ComposeAlert(accountID string, period entity.ReportPeriod, totalCost float64, rankedCosts []entity.ServiceCost, maxServices int) entity.AlertMessage {
	if maxServices < 1 {
		maxServices = types.DefaultMaxServices
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Below is the spend for account # %s from %s to %s\n", accountID, period.StartDate(), period.EndDate()))
	b.WriteString(fmt.Sprintf("Your account had a total monthly spend of $%.2f\n", totalCost))
	b.WriteString("For your information, the following are the top-costing services in this account:\n\n")

	for i, sc := range rankedCosts {
		if i >= maxServices {
			break
		}
		b.WriteString(fmt.Sprintf(" - %s - $%.2f\n", sc.ServiceName, sc.Cost))
	}

	return entity.AlertMessage{
		Subject: fmt.Sprintf("AWS Account #%s spend from %s - %s", accountID, period.StartDate(), period.EndDate()),
		Body:    b.String(),
	}
}
