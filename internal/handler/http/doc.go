// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the microblog.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as session resolution, request tracing and access logging
// are handled in this package before requests are delegated to the service
// layer. Every GET page is rendered as a JSON view; state-changing requests
// answer 303 See Other and leave a one-shot flash message in a cookie.
package http
