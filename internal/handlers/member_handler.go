package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/sportivox/sportivox-api/internal/httperr"
	"github.com/sportivox/sportivox-api/internal/httpresp"
	ucmember "github.com/sportivox/sportivox-api/internal/usecase/member"
)

type MemberHandler struct {
	listUC   *ucmember.ListMembers
	deleteUC *ucmember.DeleteMember
}

func NewMemberHandler(
	listUC *ucmember.ListMembers,
	deleteUC *ucmember.DeleteMember,
) *MemberHandler {
	return &MemberHandler{
		listUC:   listUC,
		deleteUC: deleteUC,
	}
}

func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		log.Printf("member list error: %v", err)
		httperr.Internal(c, "failed_to_list_members", "Failed to fetch members")
		return
	}

	httpresp.OK(c, members)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		httperr.BadRequest(c, "invalid_input", "Email required")
		return
	}

	res, err := h.deleteUC.Execute(c.Request.Context(), email)
	if err != nil {
		log.Printf("member delete error: %v", err)
		httperr.Internal(c, "failed_to_delete_member", "Failed to delete member")
		return
	}

	httpresp.OK(c, res)
}
