package sunat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/Registro-api/internal/application/ports"
	"github.com/jhoicas/Registro-api/internal/domain"
	"github.com/jhoicas/Registro-api/internal/domain/entity"
	"github.com/jhoicas/Registro-api/pkg/ruc"
)

// Verificar en tiempo de compilación que Client implementa RucLookupService.
var _ ports.RucLookupService = (*Client)(nil)

// Client consulta el padrón RUC de SUNAT a través de la API REST de ApiPeru.
// Usa net/http de la librería estándar; no requiere SDK.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient construye el cliente de consulta RUC.
// baseURL suele ser "https://apiperu.dev/api"; token es el Bearer del servicio.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ── Estructuras del protocolo ApiPeru ─────────────────────────────────────────

type rucRequest struct {
	RUC string `json:"ruc"`
}

// rucResponse tolera campos extra del servicio: solo se decodifican los que
// este sistema interpreta.
type rucResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    rucData `json:"data"`
}

type rucData struct {
	RUC                string  `json:"ruc"`
	NombreORazonSocial string  `json:"nombre_o_razon_social"`
	NombreComercial    *string `json:"nombre_comercial"`
	Estado             string  `json:"estado"`
	Condicion          string  `json:"condicion"`
	Direccion          *string `json:"direccion"`
	Departamento       *string `json:"departamento"`
	Provincia          *string `json:"provincia"`
	Distrito           *string `json:"distrito"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Lookup valida el formato del RUC, consulta ApiPeru y normaliza la respuesta.
// Errores de formato se reportan como domain.ErrInvalidRUC; fallos de red,
// respuestas no-2xx y RUC inexistente como domain.ErrRUCValidation.
func (c *Client) Lookup(ctx context.Context, number string) (*entity.RucData, error) {
	if err := ruc.Validate(number); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRUC, err)
	}

	body, err := json.Marshal(rucRequest{RUC: number})
	if err != nil {
		return nil, fmt.Errorf("sunat: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ruc", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("sunat: construir request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: servicio de consulta no disponible: %v", domain.ErrRUCValidation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrRUCValidation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: el servicio de consulta respondió HTTP %d", domain.ErrRUCValidation, resp.StatusCode)
	}

	var out rucResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: respuesta no es JSON válido: %v", domain.ErrRUCValidation, err)
	}
	if !out.Success {
		msg := out.Message
		if msg == "" {
			msg = "el RUC no existe en el padrón"
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrRUCValidation, msg)
	}

	return &entity.RucData{
		RUC:             out.Data.RUC,
		RazonSocial:     out.Data.NombreORazonSocial,
		NombreComercial: out.Data.NombreComercial,
		Estado:          out.Data.Estado,
		Condicion:       out.Data.Condicion,
		Direccion:       out.Data.Direccion,
		Departamento:    out.Data.Departamento,
		Provincia:       out.Data.Provincia,
		Distrito:        out.Data.Distrito,
	}, nil
}
