package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/moodnote-ai/moodnote/app/logic/v1"
	"github.com/moodnote-ai/moodnote/app/response"
	"github.com/moodnote-ai/moodnote/pkg/utils"
)

type GetAdviceRequest struct {
	Question string `json:"question" form:"question" binding:"required"`
}

func (s *HttpSrv) GetAdvice(c *gin.Context) {
	var (
		err error
		req GetAdviceRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	res, err := v1.NewAdviceLogic(c, s.Core).GetAdvice(req.Question)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, res)
}
