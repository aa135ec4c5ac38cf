// Package embeddings binds local fastembed models to the embedding
// interfaces used by langchaingo and chromem-go.
//
// A Client constructs embedding models over the bundled fastembed runtime
// (ONNX-based, runs fully local). Each model pairs an inference backend
// with the embedding width from the models catalog:
//
//	client, err := embeddings.NewClient(embeddings.Config{})
//	if err != nil {
//	    // Handle error
//	}
//
//	model, err := client.EmbeddingModel(models.BGESmallENV15)
//	if err != nil {
//	    // Handle error
//	}
//	defer model.Close()
//
//	results, err := model.EmbedTexts(ctx, []string{"Hello, world!", "Goodbye, world!"})
//
// Each result pairs the original document with its vector, in input order.
// For langchaingo pipelines, Client.Embedder returns a batching embedder;
// for chromem-go collections, EmbeddingModel.EmbeddingFunc adapts the
// model to an embedding function.
//
// The fastembed runtime needs cgo for its ONNX bindings. Binaries built
// with CGO_ENABLED=0 can still construct models over a caller-supplied
// Backend via NewUserDefinedModel.
package embeddings
