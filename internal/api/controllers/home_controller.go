package controllers

import (
	"github.com/gin-gonic/gin"
	"petsoft/pkg/utils"
)

// Home serves the public marketing page.
func Home(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"page":    "home",
		"product": "PetSoft",
		"tagline": "Manage your pet daycare with ease",
	}, "")
}
