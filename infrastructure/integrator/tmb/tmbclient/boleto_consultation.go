package tmbclient

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	tmbdomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/tmb/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ConsultationParams cobre as quatro formas de consulta do provedor:
// dia único, período, mês ou ano. Apenas um modo deve ser preenchido.
type ConsultationParams struct {
	Date      string
	StartDate string
	EndDate   string
	Month     string // "2006-01"
	Year      string // "2006"
}

func (p ConsultationParams) apply(query url.Values) {
	switch {
	case p.Date != "":
		query.Set("data", p.Date)
	case p.Month != "":
		query.Set("mes", p.Month)
	case p.Year != "":
		query.Set("ano", p.Year)
	default:
		query.Set("inicio", p.StartDate)
		query.Set("fim", p.EndDate)
	}
}

func (c *TMBClient) GetBoletoSales(ctx context.Context, params ConsultationParams) ([]tmbdomain.BoletoSale, error) {
	var response []tmbdomain.BoletoSale

	if err := c.doGet(ctx, "/boletos/vendas", params, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao consultar vendas de boleto no TMB")
	}

	return response, nil
}

func (c *TMBClient) GetInstallmentReport(ctx context.Context, params ConsultationParams) (*tmbdomain.InstallmentReport, error) {
	var response tmbdomain.InstallmentReport

	if err := c.doGet(ctx, "/boletos/parcelados/resumo", params, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao consultar resumo de boletos parcelados no TMB")
	}

	return &response, nil
}

func (c *TMBClient) doGet(ctx context.Context, resource string, params ConsultationParams, out any) error {
	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.TMB.URL)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	query := endpoint.Query()
	params.apply(query)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.TMB.AccessToken)
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
