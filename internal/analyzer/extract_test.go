package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func symbolsOfKind(syms []Symbol, kind SymbolKind) []Symbol {
	var out []Symbol
	for _, s := range syms {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

func TestStrategyFor(t *testing.T) {
	assert.NotNil(t, StrategyFor(".java"))
	assert.NotNil(t, StrategyFor(".py"))
	assert.NotNil(t, StrategyFor(".ts"))
	assert.NotNil(t, StrategyFor(".JAVA"))
	assert.Nil(t, StrategyFor(".go"))
	assert.Nil(t, StrategyFor(""))
}

func TestJavaExtract(t *testing.T) {
	content := `package com.shop.billing;

import javax.persistence.Entity;

@Entity
public class Invoice {
}

@RestController
public class InvoiceController {

    @GetMapping("/api/invoices")
    public List<Invoice> list() { return null; }

    @PostMapping(value = "/api/invoices")
    public Invoice create() { return null; }
}
`
	syms := javaStrategy{}.Extract(content, "src/main/java/Invoice.java")

	classes := symbolsOfKind(syms, KindClass)
	require.Len(t, classes, 2)
	assert.Equal(t, "Invoice", classes[0].Name)
	assert.Equal(t, 6, classes[0].Line)
	assert.Equal(t, "InvoiceController", classes[1].Name)

	endpoints := symbolsOfKind(syms, KindAPIEndpoint)
	require.Len(t, endpoints, 2)
	assert.Equal(t, "/api/invoices", endpoints[0].Name)

	entities := symbolsOfKind(syms, KindDBEntity)
	require.Len(t, entities, 1)
	assert.Equal(t, "Invoice", entities[0].Name)
	assert.Zero(t, entities[0].Line)
}

func TestJavaExtractNoEntities(t *testing.T) {
	syms := javaStrategy{}.Extract("public class Plain {}\n", "Plain.java")
	assert.Empty(t, symbolsOfKind(syms, KindDBEntity))
	require.Len(t, symbolsOfKind(syms, KindClass), 1)
}

func TestPythonExtract(t *testing.T) {
	content := `import flask

class PaymentService:
    def charge(self):
        pass

def process_refund(amount):
    pass

@app.route("/payments")
def list_payments():
    pass

@router.get("/refunds")
def list_refunds():
    pass
`
	syms := pythonStrategy{}.Extract(content, "billing/payments.py")

	classes := symbolsOfKind(syms, KindClass)
	require.Len(t, classes, 1)
	assert.Equal(t, "PaymentService", classes[0].Name)
	assert.Equal(t, 3, classes[0].Line)

	funcs := symbolsOfKind(syms, KindFunction)
	require.Len(t, funcs, 3)
	assert.Equal(t, "process_refund", funcs[0].Name)
	assert.Equal(t, 7, funcs[0].Line)

	endpoints := symbolsOfKind(syms, KindAPIEndpoint)
	require.Len(t, endpoints, 2)
	assert.Equal(t, "/payments", endpoints[0].Name)
	assert.Equal(t, "/refunds", endpoints[1].Name)
}

func TestPythonExtractIndentedSkipped(t *testing.T) {
	content := "class Outer:\n    class Inner:\n        pass\n    def method(self):\n        pass\n"
	syms := pythonStrategy{}.Extract(content, "a.py")
	require.Len(t, symbolsOfKind(syms, KindClass), 1)
	assert.Empty(t, symbolsOfKind(syms, KindFunction))
}

func TestJSTSExtract(t *testing.T) {
	content := `import express from "express";

interface CartItem {
  sku: string;
}

class CartService {
}

function addItem(item) {}

const removeItem = async (sku) => {};

router.get("/cart", listCart);
app.post("/cart/items", addHandler);
`
	syms := jstsStrategy{}.Extract(content, "src/cart.ts")

	classes := symbolsOfKind(syms, KindClass)
	require.Len(t, classes, 1)
	assert.Equal(t, "CartService", classes[0].Name)

	interfaces := symbolsOfKind(syms, KindInterface)
	require.Len(t, interfaces, 1)
	assert.Equal(t, "CartItem", interfaces[0].Name)

	funcs := symbolsOfKind(syms, KindFunction)
	var names []string
	for _, f := range funcs {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "addItem")
	assert.Contains(t, names, "removeItem")

	endpoints := symbolsOfKind(syms, KindAPIEndpoint)
	require.Len(t, endpoints, 2)
	assert.Equal(t, "/cart", endpoints[0].Name)
	assert.Equal(t, "/cart/items", endpoints[1].Name)
}

func TestExtractEmptyContent(t *testing.T) {
	for _, ext := range []string{".java", ".py", ".ts"} {
		assert.Empty(t, StrategyFor(ext).Extract("", "x"+ext))
	}
}

func TestLineAt(t *testing.T) {
	content := "one\ntwo\nthree"
	assert.Equal(t, 1, lineAt(content, 0))
	assert.Equal(t, 2, lineAt(content, 4))
	assert.Equal(t, 3, lineAt(content, 8))
}
