package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jawwad-masteee/handlix/services/navigator"
)

// selectionFromQuery builds the page selection from ?category=&q=&open=.
// Unknown category tokens leave the selection idle.
func selectionFromQuery(c *gin.Context) *navigator.Selection {
	sel := navigator.NewSelection()
	sel.Enter(c.Query("category"))
	sel.Search(c.Query("q"))
	if open := c.Query("open"); open != "" {
		sel.Toggle(open)
	}
	return sel
}
