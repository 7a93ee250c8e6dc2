package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/maildiscovery/go-parser-server/metrics"
	"github.com/maildiscovery/go-parser-server/services"
	"github.com/maildiscovery/go-parser-server/types"
	"github.com/maildiscovery/go-parser-server/util"
)

type ParserApi struct {
	parseService *services.ParseService
	validate     *validator.Validate
}

func NewParserApi(parseService *services.ParseService) *ParserApi {
	validate := validator.New()

	return &ParserApi{
		parseService: parseService,
		validate:     validate,
	}
}

// Extract unique email addresses from a batch of parsed email headers
// @Summary Extract unique email addresses from a batch of parsed email headers
// @Description Folds all from/to/cc/bcc fields of the submitted headers into a deduplicated address list
// @Tags Parsing
// @Accept json
// @Produce json
// @Param headers body types.InputParse true "batch of email headers"
// @Success 200 {object} types.OutputParse
// @Failure 422 {object} api.ApiError "schema validation failed"
// @Router /api/v1/parse [post]
func (pa *ParserApi) Parse(c *gin.Context) {
	// input headers batch
	var input types.InputParse
	if err := c.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		ApiErrorf(c, http.StatusUnprocessableEntity, "%s", BindErrorToUser(err))
		return
	}

	// validate input (a single bad record fails the whole batch)
	if err := pa.validate.Struct(input); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			ApiErrorf(c, http.StatusUnprocessableEntity, "%s", util.ValidationErrorToMessage(vErrs))
			return
		}
		ApiErrorf(c, http.StatusUnprocessableEntity, "invalid format")
		return
	}

	result := pa.parseService.Aggregate(input.Headers)

	metrics.HeadersProcessedMetricsCount.Add(float64(result.TotalProcessed))
	metrics.UniqueAddressesFoundMetricsCount.Add(float64(len(result.UniqueAddresses)))

	c.JSON(http.StatusOK, types.OutputParse{
		UniqueEmails:   result.UniqueAddresses,
		TotalProcessed: result.TotalProcessed,
	})
}
