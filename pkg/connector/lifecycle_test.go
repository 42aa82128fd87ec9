package connector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/profiq/gitlab-connector/pkg/config"
)

var _ = Describe("Session lifecycle", func() {
	var (
		ctx     context.Context
		server  *httptest.Server
		session *Session
	)

	BeforeEach(func() {
		ctx = context.Background()
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			Expect(json.NewEncoder(w).Encode(map[string]string{
				"private_token": "resolved-token",
			})).To(Succeed())
		}))

		var err error
		session, err = NewSession(
			&config.ConnectorConfig{Host: server.URL},
			WithHTTPClient(&http.Client{}),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
	})

	It("starts out disconnected", func() {
		Expect(session.IsOpen()).To(BeFalse())
	})

	It("transitions to open after a successful exchange", func() {
		Expect(session.Open(ctx, "jdoe", "s3cret")).To(Succeed())
		Expect(session.IsOpen()).To(BeTrue())

		client, err := session.Client()
		Expect(err).NotTo(HaveOccurred())
		Expect(client.Host()).To(Equal(server.URL))
	})

	It("transitions back to disconnected on Close", func() {
		Expect(session.Open(ctx, "jdoe", "s3cret")).To(Succeed())
		session.Close()
		Expect(session.IsOpen()).To(BeFalse())
	})

	It("can reopen after Close without fresh credentials", func() {
		Expect(session.Open(ctx, "jdoe", "s3cret")).To(Succeed())
		session.Close()

		// the first open pinned the resolved token to the configuration
		Expect(session.Open(ctx, "", "")).To(Succeed())
		Expect(session.IsOpen()).To(BeTrue())
	})

	It("treats a repeated Open as a handle swap", func() {
		Expect(session.Open(ctx, "jdoe", "s3cret")).To(Succeed())
		first, err := session.Client()
		Expect(err).NotTo(HaveOccurred())

		Expect(session.Open(ctx, "", "")).To(Succeed())
		second, err := session.Client()
		Expect(err).NotTo(HaveOccurred())

		Expect(second).NotTo(BeIdenticalTo(first))
		Expect(session.IsOpen()).To(BeTrue())
	})

	It("ends disconnected after a reachability probe", func() {
		Expect(session.CheckReachable(ctx, "jdoe", "s3cret")).To(Succeed())
		Expect(session.IsOpen()).To(BeFalse())
	})
})
