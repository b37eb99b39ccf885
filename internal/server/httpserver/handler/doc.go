// Package handler provides the HTTP request handlers for authcore.
//
// The wire contract follows the legacy API: Portuguese field names
// (nome, senha, telefones, mensagem) and response shapes are preserved
// byte-for-byte where clients depend on them.
package handler
