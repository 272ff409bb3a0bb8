package controllers

import (
	"csignes/backend/store"
	"csignes/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type DictionaryController struct {
	Store store.Store
}

func NewDictionaryController(s store.Store) *DictionaryController {
	return &DictionaryController{Store: s}
}

func (dc *DictionaryController) GetSigns(c *fiber.Ctx) error {
	signs, err := dc.Store.Signs(c.Context(), c.Query("q"))
	if err != nil {
		return utils.InternalServerError(c, "Could not load dictionary")
	}

	result := []fiber.Map{}
	for _, sign := range signs {
		result = append(result, fiber.Map{
			"id":       sign.ID,
			"word":     sign.Word,
			"videoUrl": sign.VideoURL,
		})
	}

	return c.JSON(result)
}
