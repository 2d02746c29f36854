package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/KretovDmitry/ordrin-go/internal/application/params"
	"github.com/KretovDmitry/ordrin-go/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder implements interfaces.AccountService and remembers the last call.
type recorder struct {
	op   string
	args []string
}

func (r *recorder) done(op string, args ...string) (json.RawMessage, error) {
	r.op, r.args = op, args
	return json.RawMessage(`{"op":"` + op + `"}`), nil
}

func (r *recorder) Create(_ context.Context, email, password, firstName, lastName string) (json.RawMessage, error) {
	return r.done("Create", email, password, firstName, lastName)
}

func (r *recorder) GetAccountInfo(context.Context) (json.RawMessage, error) {
	return r.done("GetAccountInfo")
}

func (r *recorder) GetAddress(_ context.Context, nick string) (json.RawMessage, error) {
	return r.done("GetAddress", nick)
}

func (r *recorder) SetAddress(_ context.Context, nick string, _ *entities.Address) (json.RawMessage, error) {
	return r.done("SetAddress", nick)
}

func (r *recorder) DeleteAddress(_ context.Context, nick string) (json.RawMessage, error) {
	return r.done("DeleteAddress", nick)
}

func (r *recorder) GetCard(_ context.Context, nick string) (json.RawMessage, error) {
	return r.done("GetCard", nick)
}

func (r *recorder) SetCard(_ context.Context, p *params.SetCard) (json.RawMessage, error) {
	return r.done("SetCard", p.Nick)
}

func (r *recorder) DeleteCard(_ context.Context, nick string) (json.RawMessage, error) {
	return r.done("DeleteCard", nick)
}

func (r *recorder) GetOrderHistory(_ context.Context, orderID string) (json.RawMessage, error) {
	return r.done("GetOrderHistory", orderID)
}

func (r *recorder) UpdatePassword(_ context.Context, password string) (json.RawMessage, error) {
	return r.done("UpdatePassword", password)
}

type orderRecorder struct {
	last *params.SubmitOrder
}

func (o *orderRecorder) Submit(_ context.Context, p *params.SubmitOrder) (json.RawMessage, error) {
	o.last = p
	return json.RawMessage(`{"refnum":"1"}`), nil
}

func newTestApp(r *recorder, o *orderRecorder, files map[string]string) *app {
	return &app{
		accounts: r,
		orders:   o,
		readFile: func(name string) ([]byte, error) {
			data, ok := files[name]
			if !ok {
				return nil, os.ErrNotExist
			}
			return []byte(data), nil
		},
	}
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOp   string
		wantArgs []string
	}{
		{name: "account", args: []string{"account"}, wantOp: "GetAccountInfo"},
		{name: "all addresses", args: []string{"addrs"}, wantOp: "GetAddress", wantArgs: []string{""}},
		{name: "one address", args: []string{"addrs", "home"}, wantOp: "GetAddress", wantArgs: []string{"home"}},
		{name: "delete address", args: []string{"rm-addr", "home"}, wantOp: "DeleteAddress", wantArgs: []string{"home"}},
		{name: "all cards", args: []string{"cards"}, wantOp: "GetCard", wantArgs: []string{""}},
		{name: "delete card", args: []string{"rm-card", "visa"}, wantOp: "DeleteCard", wantArgs: []string{"visa"}},
		{name: "orders", args: []string{"orders", "7"}, wantOp: "GetOrderHistory", wantArgs: []string{"7"}},
		{name: "password", args: []string{"passwd", "x"}, wantOp: "UpdatePassword", wantArgs: []string{"x"}},
		{
			name:     "register",
			args:     []string{"register", "a@b.co", "pw", "A", "B"},
			wantOp:   "Create",
			wantArgs: []string{"a@b.co", "pw", "A", "B"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			res, err := newTestApp(r, &orderRecorder{}, nil).execute(context.Background(), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOp, r.op)
			assert.Equal(t, tt.wantArgs, r.args)
			assert.JSONEq(t, `{"op":"`+tt.wantOp+`"}`, string(res))
		})
	}
}

func TestExecuteUsage(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"unknown"},
		{"account", "extra"},
		{"rm-addr"},
		{"register", "a@b.co"},
	} {
		r := &recorder{}
		_, err := newTestApp(r, &orderRecorder{}, nil).execute(context.Background(), args)
		assert.ErrorIs(t, err, errUsage)
		assert.Empty(t, r.op)
	}
}

func TestExecuteOrder(t *testing.T) {
	files := map[string]string{
		"order.json": `{
			"restaurant_id": "142",
			"tip": "5.00",
			"delivery_date_time": "ASAP",
			"email": "jane@example.com",
			"tray": {"items": [{"item_id": "3270", "quantity": 2, "options": ["3263"]}]},
			"address": {"addr": "1 Main St", "city": "College Station", "state": "TX", "zip": "77840", "phone": "5555555555"},
			"credit_card": {"name": "Jane", "number": "4111111111111111", "expiry_month": "3", "expiry_year": "2030", "cvc": "123"}
		}`,
		"broken.json": `{`,
	}

	o := &orderRecorder{}
	a := newTestApp(&recorder{}, o, files)

	res, err := a.execute(context.Background(), []string{"order", "order.json"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"refnum":"1"}`, string(res))

	require.NotNil(t, o.last)
	assert.Equal(t, "142", o.last.RestaurantID)
	assert.Equal(t, "3270/2,3263", o.last.Tray.String())
	assert.Equal(t, "77840", o.last.Address.Zip)
	assert.Equal(t, "03/2030", o.last.CreditCard.Expiration())

	_, err = a.execute(context.Background(), []string{"order", "missing.json"})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = a.execute(context.Background(), []string{"order", "broken.json"})
	assert.Error(t, err)
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, json.RawMessage(`{"b":1,"a":[1,2]}`)))
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, printJSON(&buf, json.RawMessage(`plain text`)))
	assert.Equal(t, "plain text\n", buf.String())

	buf.Reset()
	require.NoError(t, printJSON(&buf, nil))
	assert.Empty(t, buf.String())
}
