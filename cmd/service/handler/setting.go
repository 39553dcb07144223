package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/moodnote-ai/moodnote/app/logic/v1"
	"github.com/moodnote-ai/moodnote/app/response"
	"github.com/moodnote-ai/moodnote/pkg/utils"
)

func (s *HttpSrv) GetSetting(c *gin.Context) {
	setting, err := v1.NewSettingLogic(c, s.Core).GetSetting(c.Param("key"))
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, setting)
}

type SetSettingRequest struct {
	Value string `json:"value" form:"value"`
}

func (s *HttpSrv) SetSetting(c *gin.Context) {
	var (
		err error
		req SetSettingRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewSettingLogic(c, s.Core).SetSetting(c.Param("key"), req.Value); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}
