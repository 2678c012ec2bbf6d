package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/stockeye/estoque-api/internal/application/catalog"
	"github.com/stockeye/estoque-api/internal/application/dto"
	"github.com/stockeye/estoque-api/internal/application/ports"
	"github.com/stockeye/estoque-api/internal/domain"
)

// DetectHandler trata a classificação de itens por imagem (protegido).
type DetectHandler struct {
	detector  ports.ItemDetector
	catalogUC *catalog.UseCase
}

// NewDetectHandler constrói o handler.
func NewDetectHandler(detector ports.ItemDetector, catalogUC *catalog.UseCase) *DetectHandler {
	return &DetectHandler{detector: detector, catalogUC: catalogUC}
}

// Detect godoc
// @Summary      Classificar item a partir de uma imagem
// @Description  Recebe a imagem (multipart "image" ou corpo cru) e devolve o
//
//	rótulo detectado com a confiança do modelo. detected=false
//	significa confiança abaixo do limiar, não erro. Quando o rótulo
//	casa com um item do catálogo, o item vem na resposta.
//
// @Tags         detection
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Imagem do item"
// @Success      200  {object}  dto.DetectionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/detect [post]
func (h *DetectHandler) Detect(c *fiber.Ctx) error {
	image, err := imageBytes(c)
	if err != nil || len(image) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGE", Message: "imagem obrigatória (multipart \"image\" ou corpo cru)"})
	}

	detection, err := h.detector.Detect(c.Context(), image)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "DETECTOR_ERROR", Message: err.Error()})
	}
	if detection == nil {
		return c.JSON(dto.DetectionResponse{Detected: false})
	}

	out := dto.DetectionResponse{
		Detected:   true,
		Label:      detection.Label,
		Confidence: detection.Confidence,
	}
	// Rótulo sem item correspondente no catálogo não é erro: a detecção
	// volta sem o item e o chamador decide.
	item, err := h.catalogUC.ResolveLabel(detection.Label)
	if err != nil && err != domain.ErrItemNotFound {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if item != nil {
		resp := toItemResponse(item)
		out.Item = &resp
	}
	return c.JSON(out)
}

// imageBytes extrai a imagem do multipart (campo "image") ou do corpo cru.
func imageBytes(c *fiber.Ctx) ([]byte, error) {
	if fh, err := c.FormFile("image"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return c.Body(), nil
}
