package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	metadomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/meta/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type responseAdAccountsSpend struct {
	Data []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Currency string `json:"currency"`
		Business struct {
			Name string `json:"name"`
		} `json:"business"`
		Insights struct {
			Data []struct {
				Spend string `json:"spend"`
			} `json:"data"`
		} `json:"insights"`
	} `json:"data"`
}

// GetAdAccountsSpend lista todas as contas de anúncio do business com o
// investimento do período, uma linha por conta (contas sem insight no
// período entram com spend vazio).
func (c *MetaClient) GetAdAccountsSpend(ctx context.Context, startDate, endDate time.Time) ([]metadomain.AdAccountSpendInsight, error) {
	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))

	params := &url.Values{}
	params.Add("fields", fmt.Sprintf("name,currency,business{name},insights.time_range(%s){spend}", timeRange))
	params.Add("limit", "200")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/%s/owned_ad_accounts?%s", c.Cfg.Meta.URL, c.Cfg.Meta.BusinessID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response responseAdAccountsSpend
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	insights := make([]metadomain.AdAccountSpendInsight, 0, len(response.Data))
	for _, account := range response.Data {
		insight := metadomain.AdAccountSpendInsight{
			AccountID:    account.ID,
			AccountName:  account.Name,
			BusinessName: account.Business.Name,
			Currency:     account.Currency,
		}

		if len(account.Insights.Data) > 0 {
			insight.Spend = account.Insights.Data[0].Spend
		}

		insights = append(insights, insight)
	}

	return insights, nil
}
