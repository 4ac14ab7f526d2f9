package actions

import (
	"testing"

	"github.com/ohcard-dev/ohcard/db"
	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/ohcard-dev/ohcard/internal/testutil"
	"github.com/ohcard-dev/ohcard/internal/types"
	"github.com/ohcard-dev/ohcard/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientWithTags(t *testing.T) {
	setup(t)

	actor := signUp(t, "owner@example.com")

	client, err := CreateClient(actor, ClientInput{
		Nickname:      " 小雨 ",
		ContactInfo:   "xiaoyu_wx",
		ContactMethod: "WeChat",
		Tags:          []string{"#职业困惑", " #高敏感 ", "#职业困惑", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, "小雨", client.Nickname)
	assert.Equal(t, types.ContactWeChat, client.ContactMethod)

	var tags []models.ClientTag
	require.NoError(t, db.DB.Where("client_id = ?", client.ID).Order("id").Find(&tags).Error)
	require.Len(t, tags, 2)
	assert.Equal(t, "#职业困惑", tags[0].Name)
	assert.Equal(t, utils.ColorForTag("#职业困惑"), tags[0].Color)
	assert.Equal(t, "#高敏感", tags[1].Name)

	assert.Equal(t, int64(1), testutil.CountActivity(t, actor.User.ID, string(types.ActivityAddClient)))
}

func TestCreateClientValidation(t *testing.T) {
	setup(t)

	actor := signUp(t, "owner@example.com")

	_, err := CreateClient(actor, ClientInput{Nickname: "  ", ContactInfo: "123", ContactMethod: "email"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["nickname"])
	assert.Equal(t, "must be one of: wechat, phone", verr.Fields["contact_method"])

	assert.Zero(t, testutil.CountActivity(t, actor.User.ID, string(types.ActivityAddClient)))
}

func TestUpdateClient(t *testing.T) {
	setup(t)

	actor := signUp(t, "owner@example.com")
	intruder := signUp(t, "intruder@example.com")

	client, err := CreateClient(actor, ClientInput{
		Nickname:      "阿明",
		ContactInfo:   "13800000000",
		ContactMethod: types.ContactPhone,
		Tags:          []string{"#焦虑"},
	})
	require.NoError(t, err)

	update := ClientInput{
		Nickname:      "阿明",
		ContactInfo:   "aming_wx",
		ContactMethod: types.ContactWeChat,
		Tags:          []string{"#睡眠"},
	}

	_, err = UpdateClient(intruder, client.ID, update)
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := UpdateClient(actor, client.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "aming_wx", updated.ContactInfo)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "#睡眠", updated.Tags[0].Name)

	update.Tags = nil
	updated, err = UpdateClient(actor, client.ID, update)
	require.NoError(t, err)
	assert.Len(t, updated.Tags, 1)

	assert.Equal(t, int64(2), testutil.CountActivity(t, actor.User.ID, string(types.ActivityUpdateClient)))
	assert.Zero(t, testutil.CountActivity(t, intruder.User.ID, string(types.ActivityUpdateClient)))
}
