// Package models implements the autoencoder family on top of the nn
// building blocks: plain autoencoders, variational autoencoders,
// Wasserstein autoencoders with an MMD penalty, adversarial
// autoencoders, and the two-stage VAE.
//
// All models work in feature-major layout: inputs have shape
// [features, batch] and latents have shape [latentDim, batch].
package models
