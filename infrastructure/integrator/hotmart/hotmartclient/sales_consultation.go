package hotmartclient

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	hotmartdomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/hotmart/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type SalesConsultationParams struct {
	StartDate string
	EndDate   string
}

func (c *HotmartClient) GetSales(ctx context.Context, params SalesConsultationParams) (hotmartdomain.SalesResponse, error) {
	var response hotmartdomain.SalesResponse

	if err := c.doGet(ctx, "/sales/history", params, &response); err != nil {
		return response, errors.Wrap(err, "erro ao consultar vendas no Hotmart")
	}

	return response, nil
}

func (c *HotmartClient) GetRefunds(ctx context.Context, params SalesConsultationParams) (hotmartdomain.RefundsResponse, error) {
	var response hotmartdomain.RefundsResponse

	if err := c.doGet(ctx, "/sales/refunds", params, &response); err != nil {
		return response, errors.Wrap(err, "erro ao consultar reembolsos no Hotmart")
	}

	return response, nil
}

// doGet executa a consulta por período e decodifica o envelope JSON em out.
// O contexto do chamador é respeitado para que ciclos substituídos cancelem
// a requisição em andamento.
func (c *HotmartClient) doGet(ctx context.Context, resource string, params SalesConsultationParams, out any) error {
	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Hotmart.URL)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	query := endpoint.Query()
	query.Set("start_date", params.StartDate)
	query.Set("end_date", params.EndDate)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Hotmart.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}
